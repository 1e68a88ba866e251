package climatedb

import (
	"context"
	"fmt"
	"time"
)

// InsertDatasetParams carries the fields for an Earth Engine dataset reference
type InsertDatasetParams struct {
	DatasetID   string
	DisplayName string
	Description string
	Band        string
	VisMin      float64
	VisMax      float64
	VisPalette  string
}

const datasetColumns = `id, dataset_id, display_name, description, band,
	vis_min, vis_max, vis_palette, created_at`

// InsertDataset adds a dataset reference, replacing any existing row with the
// same dataset ID.
func (q *Queries) InsertDataset(ctx context.Context, params InsertDatasetParams) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO datasets (
			dataset_id, display_name, description, band,
			vis_min, vis_max, vis_palette, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`,
		params.DatasetID, params.DisplayName, nullString(params.Description),
		params.Band, params.VisMin, params.VisMax, params.VisPalette,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("error inserting dataset: %w", err)
	}
	return nil
}

// ListDatasets returns all dataset references in catalog order
func (q *Queries) ListDatasets(ctx context.Context) ([]Dataset, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+datasetColumns+" FROM datasets ORDER BY id;")
	if err != nil {
		return nil, fmt.Errorf("error querying datasets: %w", err)
	}
	defer rows.Close()

	var datasets []Dataset
	for rows.Next() {
		dataset, err := scanDataset(rows)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, dataset)
	}
	return datasets, rows.Err()
}

// GetDataset returns a dataset reference by its Earth Engine dataset ID
func (q *Queries) GetDataset(ctx context.Context, datasetID string) (Dataset, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+datasetColumns+" FROM datasets WHERE dataset_id = ?;", datasetID)
	dataset, err := scanDataset(row)
	if err != nil {
		return Dataset{}, fmt.Errorf("error scanning dataset: %w", err)
	}
	return dataset, nil
}

func scanDataset(row rowScanner) (Dataset, error) {
	var dataset Dataset
	var createdAt int64
	err := row.Scan(
		&dataset.ID, &dataset.DatasetID, &dataset.DisplayName,
		&dataset.Description, &dataset.Band, &dataset.VisMin,
		&dataset.VisMax, &dataset.VisPalette, &createdAt,
	)
	if err != nil {
		return Dataset{}, err
	}
	dataset.CreatedAt = time.Unix(createdAt, 0).UTC()
	return dataset, nil
}
