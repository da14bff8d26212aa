package resputil

type ErrorCode int

const (
	OK ErrorCode = 0

	// General
	InvalidRequest ErrorCode = 40001

	// Referenced project or employee absent or soft-deleted
	NotFound ErrorCode = 40401

	// Assignment rejections
	CapacityExceeded    ErrorCode = 40901
	AlreadyAssigned     ErrorCode = 40902
	QuotaExceeded       ErrorCode = 40903
	PrerequisiteMissing ErrorCode = 40904
	InvalidParent       ErrorCode = 40905

	// Underlying store failure; the operation aborted without effect
	StorageFailure ErrorCode = 50001

	// Indicates laziness of the developer
	// Frontend will directly print the message without any translation
	NotSpecified ErrorCode = 99999
)
