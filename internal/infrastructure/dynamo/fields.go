package dynamo

// DynamoDB attribute names used in update and condition expressions.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldLocationID = "location_id"
	fieldVerified   = "verified"
	fieldExpiresAt  = "expires_at"
)
