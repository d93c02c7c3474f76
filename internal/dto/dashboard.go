package dto

type DashboardQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type TodayAttendanceDto struct {
	Date       string `json:"date"`
	Active     int    `json:"active"`
	Leave      int    `json:"leave"`
	ShortLeave int    `json:"shortLeave"`
}

type DepartmentHeadcountDto struct {
	Name    string `json:"name"`
	Members int    `json:"members"`
}

type DashboardSummaryDto struct {
	Employees           EmployeeStats            `json:"employees"`
	Today               TodayAttendanceDto       `json:"today"`
	Departments         []DepartmentHeadcountDto `json:"departments"`
	PendingApplications int                      `json:"pendingApplications"`
	OpenComplaints      int                      `json:"openComplaints"`
	UpcomingEvents      int                      `json:"upcomingEvents"`
}
