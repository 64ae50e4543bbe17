package repository

import "fmt"

// ListQuery is the translated form of the list-endpoint query string.
//
// The only recognized parameter is `email`, an exact match against the
// resource's owner column (created_by for parcels, user_email for
// payments). An empty Email means no filter: every record is returned,
// which is why the HTTP layer gates that case behind the admin key.
// Unknown query parameters are ignored upstream, never errors.
//
// Sort order is fixed per resource (newest first on the resource's
// timestamp column) and is not client-controllable.
type ListQuery struct {
	Email string
}

// emailPredicate renders the optional owner filter for a list query.
// Returns an empty clause and no args when the query is unfiltered.
func emailPredicate(column string, q ListQuery) (string, []any) {
	if q.Email == "" {
		return "", nil
	}
	return fmt.Sprintf(" where %s = $1", column), []any{q.Email}
}
