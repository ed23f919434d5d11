package models

type JobStatus string

// Единое написание статусов вакансии. Ранее в базе встречались "Pending"/"Accepted"/"Rejected"
// вместе с "posted"/"retracted", см. db.normalizeLegacyStatuses
const (
	JobStatusPending   JobStatus = "pending"
	JobStatusAccepted  JobStatus = "accepted"
	JobStatusRejected  JobStatus = "rejected"
	JobStatusPosted    JobStatus = "posted"
	JobStatusRetracted JobStatus = "retracted"
)

func ParseJobStatus(value string) (JobStatus, bool) {
	status := JobStatus(normalizeEnum(value))
	switch status {
	case JobStatusPending, JobStatusAccepted, JobStatusRejected, JobStatusPosted, JobStatusRetracted:
		return status, true
	}
	return "", false
}

// IsRetractTarget статусы, в которые можно вернуть вакансию при снятии с публикации
func (s JobStatus) IsRetractTarget() bool {
	return s == JobStatusPending || s == JobStatusAccepted || s == JobStatusRetracted
}

func (s JobStatus) IsReviewResult() bool {
	return s == JobStatusAccepted || s == JobStatusRejected
}
