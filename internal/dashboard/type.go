package dashboard

type StatsOutput struct {
	Vehicles        int64 `json:"vehicles"`
	ActiveVehicles  int64 `json:"active_vehicles"`
	Documents       int64 `json:"documents"`
	Jobs            int64 `json:"jobs"`
	OpenJobs        int64 `json:"open_jobs"`
	Applications    int64 `json:"applications"`
	NewApplications int64 `json:"new_applications"`
	Inquiries       int64 `json:"inquiries"`
	NewInquiries    int64 `json:"new_inquiries"`
}
