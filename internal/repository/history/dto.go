package history

import (
	"encoding/json"
	"time"

	"github.com/kailas-cloud/promptrec/internal/domain"
)

// recordDTO is the stored JSON shape of a recommendation record.
type recordDTO struct {
	Domain      string  `json:"domain"`
	Prompt      string  `json:"prompt"`
	Similarity  float64 `json:"similarity"`
	Explanation string  `json:"explanation"`
	User        string  `json:"user"`
	CreatedAt   string  `json:"created_at"` // RFC 3339
}

func marshalRecord(rec domain.Record) (string, error) {
	data, err := json.Marshal(recordDTO{
		Domain:      rec.Domain,
		Prompt:      rec.Prompt,
		Similarity:  rec.Similarity,
		Explanation: rec.Explanation,
		User:        rec.User,
		CreatedAt:   rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalRecord(raw string) (domain.Record, error) {
	var dto recordDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return domain.Record{}, err
	}

	createdAt, err := time.Parse(time.RFC3339Nano, dto.CreatedAt)
	if err != nil {
		return domain.Record{}, err
	}

	return domain.Record{
		Domain:      dto.Domain,
		Prompt:      dto.Prompt,
		Similarity:  dto.Similarity,
		Explanation: dto.Explanation,
		User:        dto.User,
		CreatedAt:   createdAt,
	}, nil
}
