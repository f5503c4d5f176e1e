package email

const (
	subjectTaskAssignedFmt    = "New task assigned: %s"
	subjectTaskDueReminderFmt = "Reminder: %s is due soon"
)
