package main

import (
	"fmt"
	"strings"
)

// QueryBuilder constructs GitHub search syntax for the candidate PR
// lookup.
type QueryBuilder struct {
	terms []string
}

// NewQueryBuilder creates a new query builder.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// Repo adds a repository filter.
func (qb *QueryBuilder) Repo(owner, name string) *QueryBuilder {
	qb.terms = append(qb.terms, fmt.Sprintf("repo:%s/%s", owner, name))
	return qb
}

// Type adds the type filter for pull requests.
func (qb *QueryBuilder) Type(t string) *QueryBuilder {
	qb.terms = append(qb.terms, fmt.Sprintf("type:%s", t))
	return qb
}

// State adds a state filter.
func (qb *QueryBuilder) State(state string) *QueryBuilder {
	qb.terms = append(qb.terms, fmt.Sprintf("state:%s", state))
	return qb
}

// Author adds an author filter. GitHub search expects "app/name" for
// bot accounts that the REST API reports as "name[bot]"; SearchAuthor
// performs that translation.
func (qb *QueryBuilder) Author(author string) *QueryBuilder {
	qb.terms = append(qb.terms, fmt.Sprintf("author:%s", author))
	return qb
}

// Sort adds sorting criteria.
func (qb *QueryBuilder) Sort(field string) *QueryBuilder {
	qb.terms = append(qb.terms, fmt.Sprintf("sort:%s", field))
	return qb
}

// Build constructs the final search query string.
func (qb *QueryBuilder) Build() string {
	return strings.Join(qb.terms, " ")
}

// SearchAuthor converts a REST-style bot login ("dependabot[bot]") to
// the "app/dependabot" form the search API expects. Non-bot logins
// pass through unchanged.
func SearchAuthor(login string) string {
	if name, ok := strings.CutSuffix(login, "[bot]"); ok {
		return "app/" + name
	}
	return login
}
