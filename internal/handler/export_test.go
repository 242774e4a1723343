package handler

// Export for testing
type CleanResponse = cleanResponse
type BatchResponse = batchResponse
type BatchItemResponse = batchItemResponse
type HostsResponse = hostsResponse
type HealthResponse = healthResponse

var NewCleanHandlerHelper = NewCleanHandler

var WriteServiceError = writeServiceError
