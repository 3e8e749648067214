package iofetch

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"

	"github.com/gridstats/pbpkit/pkg/pbp"
)

// FetchIDMap retrieves the legacy-ID map: a CSV with gsis_id and
// new_id columns. An unavailable source yields an Unavailable result;
// the caller substitutes an identity resolver.
func (f *fetcher) FetchIDMap(ctx context.Context) pbp.FetchResult[pbp.IDMapping] {
	body, err := f.fetchFile(ctx, f.srcs.IDMapURL, "legacy_id_map.csv")
	if err != nil {
		return pbp.Unavailable[pbp.IDMapping](err)
	}

	rows, err := parseIDMapCSV(body)
	if err != nil {
		return pbp.Unavailable[pbp.IDMapping](
			DecodeError(f.srcs.IDMapURL, err))
	}

	slog.Info("Fetched legacy-ID map", "mappings", len(rows))
	return pbp.Fetched(rows)
}

func parseIDMapCSV(body []byte) ([]pbp.IDMapping, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1

	hdr, err := r.Read()
	if err != nil {
		return nil, err
	}
	col := headerIndex(hdr)

	iGsis := col("gsis_id")
	iNew := col("new_id")
	if iGsis < 0 || iNew < 0 {
		return nil, MissingColumnsError([]string{"gsis_id", "new_id"})
	}

	var res []pbp.IDMapping
	for {
		rec, err := r.Read()
		if err != nil {
			break
		}
		m := pbp.IDMapping{
			GsisID: field(rec, iGsis),
			NewID:  field(rec, iNew),
		}
		if m.GsisID == "" || m.NewID == "" {
			continue
		}
		res = append(res, m)
	}
	return res, nil
}
