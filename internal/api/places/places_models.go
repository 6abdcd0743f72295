package places

import "github.com/barhop/barhop-api/internal/types"

// Wire shapes for the Google Maps web service responses. Only the
// fields the service reads are declared.

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location types.Location `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type searchResponse struct {
	Status  string      `json:"status"`
	Results []types.Bar `json:"results"`
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Reviews []struct {
			Text string `json:"text"`
		} `json:"reviews"`
	} `json:"result"`
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}
