package vibes

import (
	"fmt"
	"strings"

	"github.com/barhop/barhop-api/internal/types"
)

const systemInstruction = "You are a helpful assistant that classifies bars into vibes and writes engaging descriptions."

// Vibes is the fixed vocabulary of mood tags.
var Vibes = []string{"fancy", "dive", "chill", "wine bar", "dancey", "rooftop"}

// vibeEmojis decorates each recommendation. Unknown vibes get the
// fallback beer glasses.
var vibeEmojis = map[string]string{
	"fancy":    "🍸",
	"dive":     "🍺",
	"chill":    "😎",
	"wine bar": "🍷",
	"dancey":   "💃",
	"rooftop":  "🏙️",
}

const fallbackEmoji = "🍻"

// EmojiFor returns the emoji for a vibe tag.
func EmojiFor(vibe string) string {
	if emoji, ok := vibeEmojis[strings.ToLower(vibe)]; ok {
		return emoji
	}
	return fallbackEmoji
}

func buildVibePrompt(venues []types.Bar) string {
	lines := make([]string, 0, len(venues))
	for i, bar := range venues {
		rating := "N/A"
		if bar.Rating != nil {
			rating = fmt.Sprintf("%.1f", *bar.Rating)
		}
		price := "N/A"
		if bar.PriceLevel != nil && *bar.PriceLevel > 0 {
			price = strings.Repeat("$", *bar.PriceLevel)
		}
		lines = append(lines, fmt.Sprintf("%d. %s - Rating: %s, Price: %s, Location: %s",
			i, bar.Name, rating, price, bar.Vicinity))
	}
	vibeList := strings.Join(Vibes, ", ")

	return fmt.Sprintf(`You are a local bar expert helping classify bars into different vibes. Here are the available vibes: %s.

Here are nearby bars:
%s

For each vibe category (%s), select the ONE best matching bar from the list and provide a short, engaging description (1-2 sentences) that captures why this bar fits that vibe. If no bar clearly fits a vibe, you can skip that vibe.

IMPORTANT: Use the exact barIndex number shown in the list above (starting from 0).

Respond in JSON format like this:
{
  "recommendations": [
    {
      "vibe": "fancy",
      "barIndex": 0,
      "description": "An upscale cocktail lounge with craft drinks and elegant ambiance."
    }
  ]
}

Focus on unique characteristics that make each bar special for its vibe. Keep descriptions punchy and appealing.`,
		vibeList, strings.Join(lines, "\n"), vibeList)
}
