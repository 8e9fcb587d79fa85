package services

import (
	"errors"
	"fmt"

	"folio_backend/internal/models"
	"folio_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They honor the owner-scoping contract exactly:
// a foreign row reads and writes like a missing one.

type fakeCollectionRepo[T models.OwnedItem] struct {
	items map[string]T

	failCreate  error
	failList    error
	failUpdates error

	// applyUpdates patches a stored item; the fake cannot reflect over T.
	applyUpdates func(item T, updates map[string]interface{}) T
}

func newFakeCollectionRepo[T models.OwnedItem](apply func(T, map[string]interface{}) T) *fakeCollectionRepo[T] {
	return &fakeCollectionRepo[T]{items: map[string]T{}, applyUpdates: apply}
}

func (f *fakeCollectionRepo[T]) ListByOwner(db *gorm.DB, ownerID string) ([]T, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	var out []T
	for _, item := range f.items {
		if item.OwnerID() == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCollectionRepo[T]) FindByID(db *gorm.DB, id, ownerID string) (*T, error) {
	item, ok := f.items[id]
	if !ok || item.OwnerID() != ownerID {
		return nil, repositories.ErrItemNotFound
	}
	return &item, nil
}

func (f *fakeCollectionRepo[T]) Create(db *gorm.DB, item *T) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	id := (*item).ItemID()
	if id == "" {
		id = uuid.NewString()
		*item = f.withID(*item, id)
	}
	f.items[id] = *item
	return nil
}

func (f *fakeCollectionRepo[T]) Updates(db *gorm.DB, id, ownerID string, updates map[string]interface{}) error {
	if f.failUpdates != nil {
		return f.failUpdates
	}
	item, ok := f.items[id]
	if !ok || item.OwnerID() != ownerID {
		return repositories.ErrItemNotFound
	}
	f.items[id] = f.applyUpdates(item, updates)
	return nil
}

func (f *fakeCollectionRepo[T]) Delete(db *gorm.DB, id, ownerID string) error {
	item, ok := f.items[id]
	if !ok || item.OwnerID() != ownerID {
		return repositories.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeCollectionRepo[T]) CountByOwner(db *gorm.DB, ownerID string) (int64, error) {
	var n int64
	for _, item := range f.items {
		if item.OwnerID() == ownerID {
			n++
		}
	}
	return n, nil
}

// withID copies the item with a fresh id. Only the concrete types used in
// tests are handled.
func (f *fakeCollectionRepo[T]) withID(item T, id string) T {
	switch v := any(item).(type) {
	case models.Skill:
		v.ID = id
		return any(v).(T)
	case models.ExperienceItem:
		v.ID = id
		return any(v).(T)
	case models.EducationItem:
		v.ID = id
		return any(v).(T)
	case models.PortfolioItem:
		v.ID = id
		return any(v).(T)
	default:
		panic(fmt.Sprintf("unsupported item type %T", item))
	}
}

type fakeUserRepo struct {
	byID map[string]*models.User

	failUpdates error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: map[string]*models.User{}}
	for _, u := range users {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	for _, u := range f.byID {
		if u.Username == user.Username {
			return repositories.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return errors.New("duplicate email")
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Updates(db *gorm.DB, id string, updates map[string]interface{}) error {
	if f.failUpdates != nil {
		return f.failUpdates
	}
	u, ok := f.byID[id]
	if !ok {
		return repositories.ErrUserNotFound
	}
	if username, ok := updates["username"].(string); ok {
		for otherID, other := range f.byID {
			if otherID != id && other.Username == username {
				return repositories.ErrUsernameTaken
			}
		}
		u.Username = username
	}
	if v, ok := updates["display_name"].(string); ok {
		u.DisplayName = v
	}
	if v, ok := updates["profession"].(string); ok {
		u.Profession = v
	}
	if v, ok := updates["description"].(string); ok {
		u.Description = v
	}
	if v, ok := updates["image_url"].(string); ok {
		u.ImageURL = v
	}
	if v, ok := updates["image_path"].(string); ok {
		u.ImagePath = v
	}
	if v, ok := updates["contact_token"].(string); ok {
		u.ContactToken = v
	}
	if v, ok := updates["skills_section_name"].(string); ok {
		u.SkillsSectionName = v
	}
	if v, ok := updates["experience_section_name"].(string); ok {
		u.ExperienceSectionName = v
	}
	if v, ok := updates["education_section_name"].(string); ok {
		u.EducationSectionName = v
	}
	if v, ok := updates["projects_section_name"].(string); ok {
		u.ProjectsSectionName = v
	}
	return nil
}

type fakeSocialRepo struct {
	links map[string][]models.SocialLink

	failList    error
	failReplace error
}

func newFakeSocialRepo() *fakeSocialRepo {
	return &fakeSocialRepo{links: map[string][]models.SocialLink{}}
}

func (f *fakeSocialRepo) ListByOwner(db *gorm.DB, userID string) ([]models.SocialLink, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	return f.links[userID], nil
}

func (f *fakeSocialRepo) ReplaceAll(db *gorm.DB, userID string, links []models.SocialLink) error {
	if f.failReplace != nil {
		return f.failReplace
	}
	f.links[userID] = links
	return nil
}

type fakeMailer struct {
	sent []sentMail
	fail error
}

type sentMail struct {
	to, replyTo, subject, body string
}

func (f *fakeMailer) Send(to, replyTo, subject, body string) error {
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, sentMail{to: to, replyTo: replyTo, subject: subject, body: body})
	return nil
}

func applyTimelineUpdates[T models.ExperienceItem | models.EducationItem](item T, updates map[string]interface{}) T {
	switch v := any(item).(type) {
	case models.ExperienceItem:
		if title, ok := updates["title"].(string); ok {
			v.Title = title
		}
		if desc, ok := updates["description"].(string); ok {
			v.Description = desc
		}
		return any(v).(T)
	case models.EducationItem:
		if title, ok := updates["title"].(string); ok {
			v.Title = title
		}
		if desc, ok := updates["description"].(string); ok {
			v.Description = desc
		}
		return any(v).(T)
	}
	return item
}

func applyPortfolioUpdates(item models.PortfolioItem, updates map[string]interface{}) models.PortfolioItem {
	if v, ok := updates["name"].(string); ok {
		item.Name = v
	}
	if v, ok := updates["description"].(string); ok {
		item.Description = v
	}
	if v, ok := updates["accent_color"].(string); ok {
		item.AccentColor = v
	}
	if v, ok := updates["external_link"].(string); ok {
		item.ExternalLink = v
	}
	if v, ok := updates["image_url"].(string); ok {
		item.ImageURL = v
	}
	if v, ok := updates["image_path"].(string); ok {
		item.ImagePath = v
	}
	return item
}
