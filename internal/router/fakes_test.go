package router_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/petlove/backend/internal/models"
	"github.com/petlove/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore backs every repository interface with maps so the HTTP layer can
// be exercised without a database.
type memStore struct {
	mu        sync.Mutex
	users     map[primitive.ObjectID]*models.User
	notices   map[primitive.ObjectID]*models.Notice
	pets      map[primitive.ObjectID]*models.Pet
	locations map[primitive.ObjectID]*models.Location
	friends   []models.Friend
	news      []models.News
	clock     time.Time

	failPopularity error
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[primitive.ObjectID]*models.User{},
		notices:   map[primitive.ObjectID]*models.Notice{},
		pets:      map[primitive.ObjectID]*models.Pet{},
		locations: map[primitive.ObjectID]*models.Location{},
		clock:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns strictly increasing timestamps so date ordering is deterministic.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

type memUsers struct{ *memStore }
type memNotices struct{ *memStore }
type memPets struct{ *memStore }
type memLocations struct{ *memStore }
type memFriends struct{ *memStore }
type memNews struct{ *memStore }

// users

func (r memUsers) Create(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.Email = repositories.NormalizeEmail(u.Email)
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repositories.ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = r.tick()
	u.UpdatedAt = u.CreatedAt
	if u.NoticesFavorites == nil {
		u.NoticesFavorites = []primitive.ObjectID{}
	}
	if u.NoticesViewed == nil {
		u.NoticesViewed = []primitive.ObjectID{}
	}
	if u.Pets == nil {
		u.Pets = []primitive.ObjectID{}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r memUsers) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = repositories.NormalizeEmail(email)
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r memUsers) GetContact(ctx context.Context, id primitive.ObjectID) (*models.UserContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &models.UserContact{ID: u.ID, Email: u.Email, Phone: u.Phone}, nil
}

func (r memUsers) EmailExistsForOther(ctx context.Context, email string, excludeID primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = repositories.NormalizeEmail(email)
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r memUsers) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd repositories.UserUpdate) (*models.User, error) {
	return r.mutate(id, func(u *models.User) {
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Email != nil {
			u.Email = repositories.NormalizeEmail(*upd.Email)
		}
		if upd.Phone != nil {
			u.Phone = upd.Phone
		}
		if upd.Avatar != nil {
			u.Avatar = upd.Avatar
		}
	})
}

func (r memUsers) AddFavorite(ctx context.Context, userID, noticeID primitive.ObjectID) (*models.User, error) {
	return r.mutate(userID, func(u *models.User) {
		if !u.HasFavorite(noticeID) {
			u.NoticesFavorites = append(u.NoticesFavorites, noticeID)
		}
	})
}

func (r memUsers) RemoveFavorite(ctx context.Context, userID, noticeID primitive.ObjectID) (*models.User, error) {
	return r.mutate(userID, func(u *models.User) {
		u.NoticesFavorites = without(u.NoticesFavorites, noticeID)
	})
}

func (r memUsers) AddPet(ctx context.Context, userID, petID primitive.ObjectID) (*models.User, error) {
	return r.mutate(userID, func(u *models.User) {
		u.Pets = append(u.Pets, petID)
	})
}

func (r memUsers) RemovePet(ctx context.Context, userID, petID primitive.ObjectID) (*models.User, error) {
	return r.mutate(userID, func(u *models.User) {
		u.Pets = without(u.Pets, petID)
	})
}

func (r memUsers) mutate(id primitive.ObjectID, fn func(u *models.User)) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	fn(u)
	u.UpdatedAt = r.tick()
	return cloneUser(u), nil
}

func cloneUser(u *models.User) *models.User {
	cp := *u
	cp.NoticesFavorites = append([]primitive.ObjectID{}, u.NoticesFavorites...)
	cp.NoticesViewed = append([]primitive.ObjectID{}, u.NoticesViewed...)
	cp.Pets = append([]primitive.ObjectID{}, u.Pets...)
	return &cp
}

func without(ids []primitive.ObjectID, drop primitive.ObjectID) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}

// notices

func (r memNotices) Create(ctx context.Context, n *models.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = primitive.NewObjectID()
	n.CreatedAt = r.tick()
	n.UpdatedAt = n.CreatedAt
	if n.Sex == "" {
		n.Sex = models.SexUnknown
	}
	cp := *n
	r.notices[n.ID] = &cp
	return nil
}

func (r memNotices) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notices[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (r memNotices) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Notice, 0, len(ids))
	for _, id := range ids {
		if n, ok := r.notices[id]; ok {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r memNotices) List(ctx context.Context, q repositories.NoticeQuery) ([]models.Notice, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]models.Notice, 0)
	for _, n := range r.notices {
		if noticeMatches(*n, q) {
			matched = append(matched, *n)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if q.ByDate && !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if q.ByPrice != repositories.PriceUnsorted && a.Price != b.Price {
			if q.ByPrice == repositories.PriceAscending {
				return a.Price < b.Price
			}
			return a.Price > b.Price
		}
		if q.ByPopularity && a.Popularity != b.Popularity {
			return a.Popularity > b.Popularity
		}
		return a.ID.Hex() < b.ID.Hex()
	})

	total := int64(len(matched))
	start := int(q.Skip())
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func noticeMatches(n models.Notice, q repositories.NoticeQuery) bool {
	if q.Keyword != "" {
		kw := strings.ToLower(q.Keyword)
		if !strings.Contains(strings.ToLower(n.Title), kw) &&
			!strings.Contains(strings.ToLower(n.Name), kw) &&
			!strings.Contains(strings.ToLower(n.Comment), kw) {
			return false
		}
	}
	if q.Category != "" && n.Category != q.Category {
		return false
	}
	if q.Species != "" && n.Species != q.Species {
		return false
	}
	if !q.Location.IsZero() && n.Location != q.Location {
		return false
	}
	if q.Sex != "" && n.Sex != q.Sex {
		return false
	}
	return true
}

func (r memNotices) IncrementPopularity(ctx context.Context, id primitive.ObjectID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failPopularity != nil {
		return r.failPopularity
	}
	n, ok := r.notices[id]
	if !ok {
		return repositories.ErrNotFound
	}
	n.Popularity += delta
	return nil
}

func (r memNotices) DistinctLocations(ctx context.Context) ([]primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[primitive.ObjectID]bool{}
	out := make([]primitive.ObjectID, 0)
	for _, n := range r.notices {
		if !seen[n.Location] {
			seen[n.Location] = true
			out = append(out, n.Location)
		}
	}
	return out, nil
}

// pets

func (r memPets) Create(ctx context.Context, p *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = r.tick()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.pets[p.ID] = &cp
	return nil
}

func (r memPets) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pets[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r memPets) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Pet, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.pets[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r memPets) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.pets, id)
	return nil
}

// locations

func (r memLocations) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.locations[id]
	return ok, nil
}

func (r memLocations) Search(ctx context.Context, keyword string, limit int64) ([]models.LocationSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kw := strings.ToLower(keyword)
	out := make([]models.LocationSummary, 0)
	for _, l := range r.locations {
		if int64(len(out)) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(l.CityEn), kw) || strings.Contains(strings.ToLower(l.CityUa), kw) {
			out = append(out, summaryOf(l))
		}
	}
	return out, nil
}

func (r memLocations) FindSummaries(ctx context.Context, ids []primitive.ObjectID) ([]models.LocationSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.LocationSummary, 0, len(ids))
	for _, id := range ids {
		if l, ok := r.locations[id]; ok {
			out = append(out, summaryOf(l))
		}
	}
	return out, nil
}

func (r memLocations) FindRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.LocationRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[primitive.ObjectID]models.LocationRef{}
	for _, id := range ids {
		if l, ok := r.locations[id]; ok {
			out[id] = models.LocationRef{ID: l.ID, StateEn: l.StateEn, CityEn: l.CityEn}
		}
	}
	return out, nil
}

func summaryOf(l *models.Location) models.LocationSummary {
	return models.LocationSummary{ID: l.ID, UseCounty: l.UseCounty, StateEn: l.StateEn, CityEn: l.CityEn, CountyEn: l.CountyEn}
}

// friends and news

func (r memFriends) List(ctx context.Context) ([]models.Friend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Friend{}, r.friends...), nil
}

func (r memNews) List(ctx context.Context, keyword string, skip, limit int64) ([]models.News, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kw := strings.ToLower(keyword)
	matched := make([]models.News, 0)
	for _, n := range r.news {
		if kw == "" || strings.Contains(strings.ToLower(n.Title), kw) || strings.Contains(strings.ToLower(n.Text), kw) {
			matched = append(matched, n)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Date > matched[j].Date })

	total := int64(len(matched))
	start, end := skip, skip+limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}
