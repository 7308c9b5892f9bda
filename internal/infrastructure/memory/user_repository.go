package memory

import (
	"context"

	"github.com/jhoicas/practicas-api/internal/domain"
	"github.com/jhoicas/practicas-api/internal/domain/entity"
	"github.com/jhoicas/practicas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios del personal en memoria.
type UserRepo struct {
	st *Store
	l  lock
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	defer r.l.acquire()()
	for _, existing := range r.st.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.st.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	defer r.l.acquire()()
	u, ok := r.st.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	defer r.l.acquire()()
	for _, u := range r.st.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}
