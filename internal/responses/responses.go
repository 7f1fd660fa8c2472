// Package responses defines the uniform response envelope and the
// human-readable message constants returned by the API.
package responses

import "github.com/gin-gonic/gin"

// Standard responses
const (
	InvalidRequestBody = "Request body missing required fields."
)

// User responses
const (
	NoUserFound      = "No user found."
	CreateUserFailed = "Error creating user in db."
	UserUpdateFailed = "Error updating user in db."
	UserDeleted      = "User successfully deleted."
)

// Tag responses
const (
	NoTagFound      = "No tag found."
	TagExists       = "Tag name already exists."
	CreateTagFailed = "Error creating tag in db."
	TagUpdateFailed = "Error updating tag in db."
	TagDeleted      = "Tag successfully deleted."
)

// Journal responses
const (
	NoJournalFound      = "No journal found."
	CreateJournalFailed = "Error creating journal in db."
	JournalUpdateFailed = "Error updating journal in db."
	JournalDeleted      = "Journal successfully deleted."
	ExportFailed        = "Error creating pdf."
)

// Detail writes the uniform `{"detail": ...}` envelope. The payload is either
// serialized record data, a record id, or one of the message constants above.
func Detail(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, gin.H{"detail": payload})
}
