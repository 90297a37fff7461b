package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClauseWhitelistsSortColumn(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"default", "", "", "created_at desc"},
		{"order date ascending", "order_date", "asc", "order_date asc"},
		{"total amount", "total_amount", "desc", "total_amount desc"},
		{"due date", "due_date", "asc", "due_date asc"},
		{"unknown column falls back", "balance_due", "asc", "created_at asc"},
		{"injection attempt falls back", "created_at; DROP TABLE sales_orders--", "desc", "created_at desc"},
		{"direction is normalized", "created_at", "desc; DROP TABLE sales_orders--", "created_at desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sortBy, tt.sortOrder))
		})
	}
}
