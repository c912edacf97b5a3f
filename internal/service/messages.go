package service

// Caller-facing messages. Ids are appended by the callers.
const (
	msgUserAdded            = "User added successfully with ID: "
	msgUserNotFound         = "User not found with ID: "
	msgUserExists           = "already exists Emails Or Password: "
	msgUserStatusUpdated    = "Status updated successfully for User ID: "
	msgUserPointsUpdated    = "Points updated successfully for User ID: "
	msgNoUsersByCredentials = "No users found with the provided credentials"
	msgNoUsersByUsername    = "No users found with username: "

	msgBinAdded         = "Bin added successfully with ID: "
	msgBinNotFound      = "Bin not found with ID: "
	msgBinStatusUpdated = "Bin status updated successfully for ID: "

	msgCollectionAdded = "Collection added successfully with ID: "

	msgPaymentAdded      = "Payment added successfully with ID: "
	msgNoPaymentsForUser = "No payments found for user ID: "

	msgScheduleAdded    = "Schedule added successfully"
	msgScheduleNotFound = "Schedule not found"
	msgScheduleExists   = "Schedule already exists with ID: "
	msgScheduleUpdated  = "Schedule updated successfully"
	msgScheduleDeleted  = "Schedule deleted successfully"
	msgSchedulesDeleted = "All schedules deleted successfully."

	msgDriverAdded    = "Driver added successfully"
	msgDriverExists   = "Driver already exists with ID: "
	msgDriverNotFound = "Driver not found"
	msgDriverUpdated  = "Driver updated successfully"
	msgDriverDeleted  = "Driver deleted successfully"
	msgDriversDeleted = "All drivers deleted successfully."
)
