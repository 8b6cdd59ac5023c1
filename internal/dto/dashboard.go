package dto

// DashboardSummary carries the entity counts shown on the landing page.
type DashboardSummary struct {
	Batches  int `json:"batches"`
	Students int `json:"students"`
	Syllabi  int `json:"syllabi"`
}
