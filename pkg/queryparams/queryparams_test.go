package queryparams

import "testing"

func TestValidateClampsPaging(t *testing.T) {
	tests := []struct {
		name        string
		in          ListParams
		wantPage    int
		wantPerPage int
		wantOrderBy string
	}{
		{"defaults", ListParams{}, 1, DefaultPerPage, "asc"},
		{"negative page", ListParams{Page: -3, PerPage: 10}, 1, 10, "asc"},
		{"perPage capped", ListParams{Page: 2, PerPage: 500}, 2, MaxPerPage, "asc"},
		{"desc kept", ListParams{Page: 1, PerPage: 5, OrderBy: "DESC"}, 1, 5, "desc"},
		{"bogus order", ListParams{Page: 1, PerPage: 5, OrderBy: "sideways"}, 1, 5, "asc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Validate()
			if p.Page != tt.wantPage || p.PerPage != tt.wantPerPage || p.OrderBy != tt.wantOrderBy {
				t.Errorf("Validate() = page %d perPage %d orderBy %q, want %d %d %q",
					p.Page, p.PerPage, p.OrderBy, tt.wantPage, tt.wantPerPage, tt.wantOrderBy)
			}
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 20}
	if got := p.CalculateOffset(); got != 40 {
		t.Errorf("CalculateOffset() = %d, want 40", got)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 0, 1},
	}
	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}
