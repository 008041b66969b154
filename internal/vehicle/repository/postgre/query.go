package postgres

import (
	"context"
	"fmt"
	"strings"

	"autoexport-srv/internal/vehicle/repository"
	postgresPkg "autoexport-srv/pkg/postgre"
)

const vehicleColumns = `id, name_i18n, description_i18n, category, specifications, price_range_min, price_range_max, status, created_at`

// buildFilterWhere turns a Filter into a WHERE clause with positional
// arguments. It returns the clause, the arguments, and the next free
// placeholder index.
func (r *implRepository) buildFilterWhere(ctx context.Context, f repository.Filter) (string, []any, int, error) {
	conds := []string{"TRUE"}
	args := []any{}
	idx := 1

	if len(f.IDs) > 0 {
		if err := postgresPkg.ValidateUUIDs(f.IDs); err != nil {
			r.l.Errorf(ctx, "internal.vehicle.repository.postgres.buildFilterWhere.ValidateUUIDs: %v", err)
			return "", nil, 0, err
		}
		placeholders := make([]string, len(f.IDs))
		for i, id := range f.IDs {
			placeholders[i] = fmt.Sprintf("$%d", idx)
			args = append(args, id)
			idx++
		}
		conds = append(conds, fmt.Sprintf("id IN (%s)", strings.Join(placeholders, ", ")))
	}

	if f.Category != "" {
		conds = append(conds, fmt.Sprintf("category = $%d", idx))
		args = append(args, f.Category)
		idx++
	}

	if f.Status != "" {
		conds = append(conds, fmt.Sprintf("status = $%d", idx))
		args = append(args, f.Status)
		idx++
	}

	if f.PublicOnly {
		conds = append(conds, fmt.Sprintf("status <> $%d", idx))
		args = append(args, "archived")
		idx++
	}

	if f.Search != "" {
		conds = append(conds, fmt.Sprintf("name_i18n::text ILIKE $%d", idx))
		args = append(args, "%"+f.Search+"%")
		idx++
	}

	return strings.Join(conds, " AND "), args, idx, nil
}
