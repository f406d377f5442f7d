package memory

import (
	"strings"
	"time"

	"github.com/jhoicas/consola-admin/internal/domain"
	"github.com/jhoicas/consola-admin/internal/domain/entity"
	"github.com/jhoicas/consola-admin/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	t   *table[entity.User]
	now func() time.Time
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository(now func() time.Time) *UserRepo {
	if now == nil {
		now = time.Now
	}
	return &UserRepo{
		t: newTable(accessor[entity.User]{
			id:          func(u entity.User) int64 { return u.ID },
			setID:       func(u *entity.User, id int64) { u.ID = id },
			deleted:     func(u entity.User) bool { return u.Del != 0 },
			markDeleted: func(u *entity.User) { u.Del = 1 },
		}),
		now: now,
	}
}

// Create persiste un usuario. El username es único.
func (r *UserRepo) Create(u *entity.User) error {
	if existing, _ := r.GetByUsername(u.Username); existing != nil {
		return domain.ErrDuplicate
	}
	u.Del = 0
	u.CreateTime = stamp(r.now)
	u.UpdateTime = u.CreateTime
	r.t.insert(u)
	return nil
}

// GetByID obtiene un usuario; nil si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByUsername búsqueda exacta por username.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	rows := r.t.filter(func(u entity.User) bool { return u.Username == username })
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// UpdatePasswordHash reemplaza el hash de la contraseña.
func (r *UserRepo) UpdatePasswordHash(id int64, hash string) error {
	u, ok := r.t.get(id)
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = hash
	u.UpdateTime = stamp(r.now)
	r.t.put(u)
	return nil
}
