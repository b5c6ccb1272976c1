package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/inarasite/internal/kv"
)

// TestimonialsKey is the substrate key holding the serialized collection.
const TestimonialsKey = "inaratech_testimonials"

// ErrTestimonialNotFound 表示指定 ID 的证言不存在。
var ErrTestimonialNotFound = errors.New("testimonial not found")

// DefaultAvatar is used whenever a record carries no recognized avatar glyph.
const DefaultAvatar = "👤"

// AvatarOptions is the fixed glyph set a testimonial may choose from.
var AvatarOptions = []string{
	"👤", "👩‍💼", "👨‍💻", "👩‍🎨", "👨‍💼", "👩‍⚕️",
	"👨‍🚀", "👩‍🔬", "👨‍🎓", "👩‍💻", "👨‍🏫", "👩‍🚀",
}

// publicContentMinimum 为公开提交的证言内容最小长度（按字符计）。
const publicContentMinimum = 20

// Testimonial is a single client endorsement record.
type Testimonial struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Company  string `json:"company"`
	Role     string `json:"role"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
	Avatar   string `json:"avatar"`
	Featured bool   `json:"featured"`
}

// TestimonialInput represents fields accepted when creating a testimonial.
type TestimonialInput struct {
	Name     string
	Company  string
	Role     string
	Content  string
	Rating   int
	Avatar   string
	Featured bool
}

// TestimonialPatch carries a partial update; nil fields keep prior values.
type TestimonialPatch struct {
	Name     *string
	Company  *string
	Role     *string
	Content  *string
	Rating   *int
	Avatar   *string
	Featured *bool
}

// Source identifies which surface is submitting a testimonial. Public
// submissions enforce the content length floor and can never be featured.
type Source int

const (
	SourceAdmin Source = iota
	SourcePublic
)

// SeedPolicy names the fallback applied when no collection has been
// persisted yet. The admin surface lists an empty collection; the public
// display surface shows the fixed sample records instead.
type SeedPolicy int

const (
	SeedNone SeedPolicy = iota
	SeedSamples
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field-level failure of one submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("invalid testimonial fields: %s", strings.Join(names, ", "))
}

// TestimonialService provides CRUD over the persisted testimonial collection.
// Within one serving context operations are synchronous read-validate-persist
// sequences; across contexts the last full-collection write wins and earlier
// readers catch up via the substrate's change notification.
type TestimonialService struct {
	store *kv.Store
	now   func() time.Time
}

// NewTestimonialService creates a TestimonialService on top of the substrate.
func NewTestimonialService(store *kv.Store) *TestimonialService {
	return &TestimonialService{store: store, now: time.Now}
}

// WithClock 允许在测试中替换时间源。
func (s *TestimonialService) WithClock(now func() time.Time) *TestimonialService {
	if now != nil {
		s.now = now
	}
	return s
}

// List returns the persisted collection in insertion order. When nothing has
// been persisted yet the result depends on the caller's seed policy; the
// sample records are presentation-only and never written back.
func (s *TestimonialService) List(policy SeedPolicy) ([]Testimonial, error) {
	raw, ok, err := s.store.Get(TestimonialsKey)
	if err != nil {
		return nil, err
	}

	if !ok {
		if policy == SeedSamples {
			return sampleTestimonials(), nil
		}
		return []Testimonial{}, nil
	}

	var items []Testimonial
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode testimonials: %w", err)
	}
	if items == nil {
		items = []Testimonial{}
	}
	return items, nil
}

// Validate checks a candidate record and returns one error per invalid
// field. It has no side effects; an empty result means the record is
// acceptable for the given source.
func (s *TestimonialService) Validate(input TestimonialInput, source Source) []FieldError {
	var fields []FieldError

	if strings.TrimSpace(input.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(input.Company) == "" {
		fields = append(fields, FieldError{Field: "company", Message: "Company is required"})
	}
	if strings.TrimSpace(input.Role) == "" {
		fields = append(fields, FieldError{Field: "role", Message: "Role is required"})
	}

	content := strings.TrimSpace(input.Content)
	switch {
	case content == "":
		fields = append(fields, FieldError{Field: "content", Message: "Testimonial content is required"})
	case source == SourcePublic && utf8.RuneCountInString(content) < publicContentMinimum:
		fields = append(fields, FieldError{Field: "content", Message: "Please write at least 20 characters"})
	}

	if input.Rating < 1 || input.Rating > 5 {
		fields = append(fields, FieldError{Field: "rating", Message: "Rating must be between 1 and 5"})
	}

	return fields
}

// Create validates input, assigns a fresh id and appends the record to the
// persisted collection. Public submissions are never featured. The writer
// name keeps the mutating context out of the change notification fan-out.
func (s *TestimonialService) Create(writer string, input TestimonialInput, source Source) (*Testimonial, error) {
	if fields := s.Validate(input, source); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	items, err := s.List(SeedNone)
	if err != nil {
		return nil, err
	}

	record := Testimonial{
		ID:       s.nextID(items),
		Name:     strings.TrimSpace(input.Name),
		Company:  strings.TrimSpace(input.Company),
		Role:     strings.TrimSpace(input.Role),
		Content:  strings.TrimSpace(input.Content),
		Rating:   input.Rating,
		Avatar:   normalizeAvatar(input.Avatar),
		Featured: input.Featured && source == SourceAdmin,
	}

	items = append(items, record)
	if err := s.persist(writer, items); err != nil {
		return nil, err
	}

	return &record, nil
}

// Update merges the patch into the record with the given id and persists the
// collection. Unset patch fields keep their prior values.
func (s *TestimonialService) Update(writer string, id int64, patch TestimonialPatch) (*Testimonial, error) {
	items, err := s.List(SeedNone)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range items {
		if items[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrTestimonialNotFound
	}

	merged := items[index]
	if patch.Name != nil {
		merged.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Company != nil {
		merged.Company = strings.TrimSpace(*patch.Company)
	}
	if patch.Role != nil {
		merged.Role = strings.TrimSpace(*patch.Role)
	}
	if patch.Content != nil {
		merged.Content = strings.TrimSpace(*patch.Content)
	}
	if patch.Rating != nil {
		merged.Rating = *patch.Rating
	}
	if patch.Avatar != nil {
		merged.Avatar = normalizeAvatar(*patch.Avatar)
	}
	if patch.Featured != nil {
		merged.Featured = *patch.Featured
	}

	if fields := s.Validate(TestimonialInput{
		Name:    merged.Name,
		Company: merged.Company,
		Role:    merged.Role,
		Content: merged.Content,
		Rating:  merged.Rating,
	}, SourceAdmin); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	items[index] = merged
	if err := s.persist(writer, items); err != nil {
		return nil, err
	}

	return &merged, nil
}

// Delete removes the record with the given id. Deleting an absent id reports
// ErrTestimonialNotFound so callers can tell "nothing happened" apart from a
// successful removal.
func (s *TestimonialService) Delete(writer string, id int64) error {
	items, err := s.List(SeedNone)
	if err != nil {
		return err
	}

	remaining := make([]Testimonial, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return ErrTestimonialNotFound
	}

	return s.persist(writer, remaining)
}

func (s *TestimonialService) persist(writer string, items []Testimonial) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode testimonials: %w", err)
	}
	return s.store.SetAs(writer, TestimonialsKey, string(encoded))
}

// nextID derives an id from the current Unix millisecond, bumped past the
// collection's maximum so same-millisecond creations stay unique. Ids are
// monotonically increasing and never reused.
func (s *TestimonialService) nextID(items []Testimonial) int64 {
	id := s.now().UnixMilli()
	for _, item := range items {
		if item.ID >= id {
			id = item.ID + 1
		}
	}
	return id
}

func normalizeAvatar(avatar string) string {
	for _, option := range AvatarOptions {
		if avatar == option {
			return avatar
		}
	}
	return DefaultAvatar
}
