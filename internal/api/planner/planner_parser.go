package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/barhop/barhop-api/internal/types"
)

// rawStop is one stop as the model emits it, referencing a bar by its
// zero-based index into the candidate list.
type rawStop struct {
	BarIndex      int            `json:"barIndex"`
	Order         int            `json:"order"`
	Reasoning     string         `json:"reasoning"`
	EstimatedTime string         `json:"estimatedTime"`
	VisitType     string         `json:"visitType"`
	CommuteToNext *types.Commute `json:"commuteToNext"`
}

type rawCrawl struct {
	Stops              []rawStop `json:"stops"`
	TotalEstimatedTime string    `json:"totalEstimatedTime"`
	Overview           string    `json:"overview"`
}

// CleanJSONResponse strips the Markdown code fence the model sometimes
// wraps its JSON in. Not a Markdown parser; just fence trimming.
func CleanJSONResponse(txt string) string {
	s := strings.TrimSpace(txt)
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	return strings.TrimSpace(s)
}

func parseCrawl(jsonStr string) (*rawCrawl, error) {
	var crawlData struct {
		Crawl rawCrawl `json:"crawl"`
	}
	if err := json.Unmarshal([]byte(CleanJSONResponse(jsonStr)), &crawlData); err != nil {
		return nil, fmt.Errorf("failed to parse crawl JSON: %w", err)
	}
	if len(crawlData.Crawl.Stops) == 0 {
		return nil, fmt.Errorf("crawl response contains no stops")
	}
	return &crawlData.Crawl, nil
}
