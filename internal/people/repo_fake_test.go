// Copyright (c) 2026 Brewcode. All rights reserved.

package people_test

import (
	"context"
	"sort"

	"github.com/brewcode/community/internal/people"
	"github.com/brewcode/community/internal/platform/dberr"
)

// fakeRepository is an in-memory Repository with the same contract as the
// Postgres one: Save normalizes before storing, lookups miss with the
// not-found sentinel, and matches come back in insertion order.
type fakeRepository struct {
	persons   []*people.Person
	saveCalls int
	failSave  error
	failFind  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{}
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*people.Person, error) {
	if repo.failFind != nil {
		return nil, repo.failFind
	}
	for _, person := range repo.persons {
		if person.ID == id {
			return clonePerson(person), nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepository) FindBySlug(_ context.Context, urlSlug string) (*people.Person, error) {
	if repo.failFind != nil {
		return nil, repo.failFind
	}
	for _, person := range repo.persons {
		if person.URLSlug == urlSlug {
			return clonePerson(person), nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepository) FindByAny(_ context.Context, criteria people.AlternateIdentity) (*people.Person, error) {
	if repo.failFind != nil {
		return nil, repo.failFind
	}
	if criteria.Empty() {
		return nil, dberr.ErrNotFound
	}
	for _, person := range repo.persons {
		if matchesAny(person, criteria) {
			return clonePerson(person), nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepository) Save(_ context.Context, person *people.Person) error {
	if err := people.Normalize(person); err != nil {
		return err
	}
	if repo.failSave != nil {
		return repo.failSave
	}
	repo.saveCalls++

	for i, existing := range repo.persons {
		if existing.ID == person.ID {
			repo.persons[i] = clonePerson(person)
			return nil
		}
	}
	repo.persons = append(repo.persons, clonePerson(person))
	return nil
}

func (repo *fakeRepository) List(_ context.Context, limit, offset int) ([]*people.Person, int, error) {
	sorted := make([]*people.Person, len(repo.persons))
	copy(sorted, repo.persons)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	total := len(sorted)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := make([]*people.Person, 0, end-offset)
	for _, person := range sorted[offset:end] {
		page = append(page, clonePerson(person))
	}
	return page, total, nil
}

func matchesAny(person *people.Person, criteria people.AlternateIdentity) bool {
	if criteria.Name != "" && person.Name == criteria.Name {
		return true
	}
	if criteria.TwitterNick != "" && person.TwitterNick == criteria.TwitterNick {
		return true
	}
	if criteria.GitHubNick != "" && person.GitHubNick == criteria.GitHubNick {
		return true
	}
	if criteria.Email != "" && person.Email == criteria.Email {
		return true
	}
	return false
}

func clonePerson(person *people.Person) *people.Person {
	clone := *person
	clone.Languages = append([]string(nil), person.Languages...)
	clone.Projects = append([]people.Project(nil), person.Projects...)
	return &clone
}
