package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"shareit/config"
	"shareit/infras/otel/mocks"
	bookingMocks "shareit/internal/domains/booking/mocks"
	bookingModel "shareit/internal/domains/booking/model"
	commentMocks "shareit/internal/domains/comment/mocks"
	commentModel "shareit/internal/domains/comment/model"
	itemMocks "shareit/internal/domains/item/mocks"
	"shareit/internal/domains/item/model"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/service"
	userMocks "shareit/internal/domains/user/mocks"
	userModel "shareit/internal/domains/user/model"
	cacheMocks "shareit/shared/cache/mocks"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
)

type itemFixture struct {
	svc         service.Item
	repo        *itemMocks.MockItem
	userRepo    *userMocks.MockUser
	bookingRepo *bookingMocks.MockBooking
	commentRepo *commentMocks.MockComment
	cache       *cacheMocks.MockRedisCache
}

func newItemFixture(t *testing.T) *itemFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &itemFixture{
		repo:        itemMocks.NewMockItem(ctrl),
		userRepo:    userMocks.NewMockUser(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		commentRepo: commentMocks.NewMockComment(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.userRepo, f.bookingRepo, f.commentRepo, cfg, f.cache, mocks.NewOtel())

	return f
}

func ownedItem() model.Item {
	return model.Item{
		ID:          "item-1",
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   true,
		OwnerID:     "user-1",
	}
}

func TestItemService_Add(t *testing.T) {
	available := true
	req := dto.CreateItemRequest{
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   &available,
	}

	t.Run("successful creation", func(t *testing.T) {
		f := newItemFixture(t)

		f.userRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Add(context.Background(), req, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "Drill", res.Name)
		assert.Equal(t, "user-1", res.OwnerID)
		assert.True(t, res.Available)
	})

	t.Run("owner does not exist", func(t *testing.T) {
		f := newItemFixture(t)

		f.userRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := f.svc.Add(context.Background(), req, "ghost")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "user", failure.GetParam(err))
	})
}

func TestItemService_Update(t *testing.T) {
	name := "Hammer drill"
	available := false

	t.Run("owner updates a subset of fields", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedItem(), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Hammer drill", req[model.FieldName])
				assert.Equal(t, false, req[model.FieldAvailable])
				assert.NotContains(t, req, model.FieldDescription)
				return nil
			})

		res, err := f.svc.Update(context.Background(), dto.UpdateItemRequest{Name: &name, Available: &available}, "item-1", "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "Hammer drill", res.Name)
		assert.False(t, res.Available)
		assert.Equal(t, "Cordless drill", res.Description)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedItem(), nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateItemRequest{Name: &name}, "item-1", "user-2")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "item", failure.GetParam(err))
	})

	t.Run("empty request", func(t *testing.T) {
		f := newItemFixture(t)

		_, err := f.svc.Update(context.Background(), dto.UpdateItemRequest{}, "item-1", "user-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("item does not exist", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Item{}, nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateItemRequest{Name: &name}, "missing", "user-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestItemService_GetByID(t *testing.T) {
	t.Run("owner sees booking summaries", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedItem(), nil)
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.commentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]commentModel.Comment{}, nil)
		f.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{{ID: "booking-1", BookerID: "user-2"}}, nil)
		f.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{{ID: "booking-2", BookerID: "user-3"}}, nil)

		res, err := f.svc.GetByID(context.Background(), "item-1", "user-1")

		assert.NoError(t, err)
		assert.NotNil(t, res.LastBooking)
		assert.Equal(t, "booking-1", res.LastBooking.ID)
		assert.NotNil(t, res.NextBooking)
		assert.Equal(t, "booking-2", res.NextBooking.ID)
	})

	t.Run("non-owner gets no booking summaries", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedItem(), nil)
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.commentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]commentModel.Comment{{ID: "comment-1", Text: "great", AuthorName: "Bob"}}, nil)

		res, err := f.svc.GetByID(context.Background(), "item-1", "user-2")

		assert.NoError(t, err)
		assert.Nil(t, res.LastBooking)
		assert.Nil(t, res.NextBooking)
		assert.Len(t, res.Comments, 1)
		assert.Equal(t, "Bob", res.Comments[0].AuthorName)
	})

	t.Run("item does not exist", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Item{}, nil)

		_, err := f.svc.GetByID(context.Background(), "missing", "user-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "item", failure.GetParam(err))
	})
}

func TestItemService_AddComment(t *testing.T) {
	req := dto.CreateCommentRequest{Text: "worked great"}

	t.Run("past renter can comment", func(t *testing.T) {
		f := newItemFixture(t)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "user-2", Name: "Bob"}, nil)
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.bookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "bookings.end_time < :end_time")
				assert.Equal(t, bookingModel.StatusApproved, args["status"])

				return true, nil
			})
		f.commentRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.AddComment(context.Background(), req, "item-1", "user-2")

		assert.NoError(t, err)
		assert.Equal(t, "worked great", res.Text)
		assert.Equal(t, "Bob", res.AuthorName)
		assert.NotEmpty(t, res.Created)
	})

	t.Run("no finished booking", func(t *testing.T) {
		f := newItemFixture(t)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "user-3"}, nil)
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.bookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := f.svc.AddComment(context.Background(), req, "item-1", "user-3")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "comment", failure.GetParam(err))
	})

	t.Run("author does not exist", func(t *testing.T) {
		f := newItemFixture(t)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := f.svc.AddComment(context.Background(), req, "item-1", "ghost")

		assert.Error(t, err)
		assert.Equal(t, "user", failure.GetParam(err))
	})

	t.Run("item does not exist", func(t *testing.T) {
		f := newItemFixture(t)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "user-2"}, nil)
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := f.svc.AddComment(context.Background(), req, "missing", "user-2")

		assert.Error(t, err)
		assert.Equal(t, "item", failure.GetParam(err))
	})
}

func TestItemService_Delete(t *testing.T) {
	t.Run("owner deletes item", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedItem(), nil)
		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Delete(context.Background(), "item-1", "user-1")

		assert.NoError(t, err)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		f := newItemFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownedItem(), nil)

		err := f.svc.Delete(context.Background(), "item-1", "user-2")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestItemService_GetAllByOwner(t *testing.T) {
	page := gDto.PageRequest{From: 0, Size: 10}

	t.Run("invalid page size", func(t *testing.T) {
		f := newItemFixture(t)

		f.userRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := f.svc.GetAllByOwner(context.Background(), "user-1", gDto.PageRequest{From: 0, Size: -5})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("lists items with summaries", func(t *testing.T) {
		f := newItemFixture(t)

		f.userRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Item{ownedItem()}, nil)
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.commentRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]commentModel.Comment{}, nil)
		f.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{}, nil).
			Times(2)

		res, err := f.svc.GetAllByOwner(context.Background(), "user-1", page)

		assert.NoError(t, err)
		assert.Len(t, res.Items, 1)
		assert.Nil(t, res.Items[0].LastBooking)
	})
}
