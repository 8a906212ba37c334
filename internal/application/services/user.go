package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/unicode/norm"

	"user-registration-api/internal/application/ports"
	domain "user-registration-api/internal/domain/user"
	userDB "user-registration-api/internal/infrastructure/db/postgres/user"
	"user-registration-api/internal/infrastructure/mq"
	"user-registration-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	normalize(&u)

	// advisory pre-check; the UNIQUE constraint in the store is the
	// authoritative guard against concurrent duplicates
	exists, err := us.userRepository.EmailExists(ctx, u.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, userDB.ErrEmailAlreadyExists
	}

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPost,
			UserID:  int64(uRet.ID),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	normalize(&u)

	// a record keeping its own email is not a conflict
	exists, err := us.userRepository.EmailExists(ctx, u.Email, u.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, userDB.ErrEmailAlreadyExists
	}

	uRet, err := us.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPut,
			UserID:  int64(uRet.ID),
			Payload: user.ToResponseUser(*uRet),
		}

		us.mCounter.WithLabelValues("user_updated_total").Inc()
	}

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if u != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodDelete,
			UserID:  int64(u.ID),
			Payload: user.ToResponseUser(*u),
		}

		us.mCounter.WithLabelValues("user_deleted_total").Inc()
	}

	return u, nil
}

// normalize trims free-text fields, brings them to NFC and uppercases the
// state code before the record hits the store. Email is only trimmed:
// uniqueness is case-sensitive.
func normalize(u *domain.User) {
	u.FullName = norm.NFC.String(strings.TrimSpace(u.FullName))
	u.Email = strings.TrimSpace(u.Email)
	u.Phone = strings.TrimSpace(u.Phone)
	u.ZipCode = strings.TrimSpace(u.ZipCode)
	u.Address = norm.NFC.String(strings.TrimSpace(u.Address))
	u.Number = strings.TrimSpace(u.Number)
	u.City = norm.NFC.String(strings.TrimSpace(u.City))
	u.State = strings.ToUpper(strings.TrimSpace(u.State))
}
