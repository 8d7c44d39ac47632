package entity

import "time"

type ChangeAction string

const (
	ChangeActionCreate ChangeAction = "CREATE"
	ChangeActionDelete ChangeAction = "DELETE"
)

type ChangeStatus string

const (
	ChangeStatusPending ChangeStatus = "PENDING"
	ChangeStatusInsync  ChangeStatus = "INSYNC"
)

type Change struct {
	Action    ChangeAction
	RecordSet *ResourceRecordSet
}

// ChangeBatch is submitted to the provider as a unit: every change applies or none does.
type ChangeBatch struct {
	Comment string
	Changes []Change
}

func CreateBatch(record *ResourceRecordSet) ChangeBatch {
	return ChangeBatch{
		Changes: []Change{
			{Action: ChangeActionCreate, RecordSet: record},
		},
	}
}

// ReplaceBatch deletes current and creates desired in one batch. current must
// match the stored record exactly or the provider rejects the whole batch.
func ReplaceBatch(current, desired *ResourceRecordSet) ChangeBatch {
	return ChangeBatch{
		Changes: []Change{
			{Action: ChangeActionDelete, RecordSet: current},
			{Action: ChangeActionCreate, RecordSet: desired},
		},
	}
}

type ChangeInfo struct {
	ID          string
	Status      ChangeStatus
	SubmittedAt time.Time
	Comment     string
}

func (c *ChangeInfo) InSync() bool {
	return c != nil && c.Status == ChangeStatusInsync
}
