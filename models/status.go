package models

type CandidateStatus string

const (
	StatusApplied     CandidateStatus = "Applied"
	StatusShortlisted CandidateStatus = "Shortlisted"
	StatusInterviewed CandidateStatus = "Interviewed"
	StatusOffered     CandidateStatus = "Offered"
	StatusHired       CandidateStatus = "Hired"
	StatusRejected    CandidateStatus = "Rejected"
)

// CandidateStatuses порядок статусов в редакторе и на воронке
var CandidateStatuses = []CandidateStatus{
	StatusApplied,
	StatusShortlisted,
	StatusInterviewed,
	StatusOffered,
	StatusHired,
	StatusRejected,
}

type StatusBadge struct {
	Label string
	Class string
	Icon  string
}

var statusBadges = map[CandidateStatus]StatusBadge{
	StatusApplied:     {Label: "Applied", Class: "bg-blue-100 text-blue-800", Icon: "fa-paper-plane"},
	StatusShortlisted: {Label: "Shortlisted", Class: "bg-yellow-100 text-yellow-800", Icon: "fa-star"},
	StatusInterviewed: {Label: "Interviewed", Class: "bg-purple-100 text-purple-800", Icon: "fa-comments"},
	StatusOffered:     {Label: "Offered", Class: "bg-green-100 text-green-800", Icon: "fa-handshake"},
	StatusHired:       {Label: "Hired", Class: "bg-green-200 text-green-900", Icon: "fa-check-circle"},
	StatusRejected:    {Label: "Rejected", Class: "bg-red-100 text-red-800", Icon: "fa-times-circle"},
}

var neutralBadge = StatusBadge{Label: "Applied", Class: "bg-gray-100 text-gray-800", Icon: "fa-question"}

func (s CandidateStatus) IsValid() bool {
	_, ok := statusBadges[s]
	return ok
}

// Badge для неизвестного или пустого статуса возвращает нейтральный бейдж "Applied"
func (s CandidateStatus) Badge() StatusBadge {
	if badge, ok := statusBadges[s]; ok {
		return badge
	}
	return neutralBadge
}
