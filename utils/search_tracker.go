// ════════════════════════════════════════════════════════════
// Path: utils/search_tracker.go
// Track storefront search terms for the trending list
// ════════════════════════════════════════════════════════════

package utils

import (
	"log"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/kramislife/world-of-minifigs-sub001/config"
	"github.com/kramislife/world-of-minifigs-sub001/models"
)

const trendingKey = "search:trending"

// TrackSearch bumps the query's counter in the trending sorted set. Errors
// are logged and swallowed: tracking must never affect the search response.
func TrackSearch(query string) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return
	}

	if err := config.RedisClient.ZIncrBy(config.Ctx, trendingKey, 1, term).Err(); err != nil {
		log.Printf("❌ Failed to track search term %q: %v", term, err)
	}
}

// TopSearches returns the highest-scoring tracked queries, best first.
func TopSearches(limit int) ([]models.TrendingSearch, error) {
	if limit < 1 {
		limit = 10
	}

	entries, err := config.RedisClient.ZRevRangeWithScores(config.Ctx, trendingKey, 0, int64(limit-1)).Result()
	if err != nil {
		if err == redis.Nil {
			return []models.TrendingSearch{}, nil
		}
		return nil, err
	}

	top := make([]models.TrendingSearch, 0, len(entries))
	for _, entry := range entries {
		term, ok := entry.Member.(string)
		if !ok {
			continue
		}
		top = append(top, models.TrendingSearch{Query: term, Hits: int64(entry.Score)})
	}
	return top, nil
}
