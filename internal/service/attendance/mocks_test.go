package attendance

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/praxora/praxis-backend/internal/domain"
)

var _ stampRepo = &stampRepoMock{}

type stampRepoMock struct {
	CreateFunc     func(ctx context.Context, stamp *domain.TimeStamp) (*domain.TimeStamp, error)
	ListByUserFunc func(ctx context.Context, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeStamp, error)

	calls struct {
		Create []struct {
			Stamp *domain.TimeStamp
		}
		ListByUser []struct {
			PracticeID uuid.UUID
			UserID     uuid.UUID
			From       time.Time
			To         time.Time
		}
	}
	lockCreate     sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *stampRepoMock) Create(ctx context.Context, stamp *domain.TimeStamp) (*domain.TimeStamp, error) {
	if mock.CreateFunc == nil {
		panic("stampRepoMock.CreateFunc: method is nil but stampRepo.Create was just called")
	}
	callInfo := struct {
		Stamp *domain.TimeStamp
	}{Stamp: stamp}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, stamp)
}

func (mock *stampRepoMock) CreateCalls() []struct {
	Stamp *domain.TimeStamp
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *stampRepoMock) ListByUser(ctx context.Context, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeStamp, error) {
	if mock.ListByUserFunc == nil {
		panic("stampRepoMock.ListByUserFunc: method is nil but stampRepo.ListByUser was just called")
	}
	callInfo := struct {
		PracticeID uuid.UUID
		UserID     uuid.UUID
		From       time.Time
		To         time.Time
	}{PracticeID: practiceID, UserID: userID, From: from, To: to}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, practiceID, userID, from, to)
}

func (mock *stampRepoMock) ListByUserCalls() []struct {
	PracticeID uuid.UUID
	UserID     uuid.UUID
	From       time.Time
	To         time.Time
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

var _ blockRepo = &blockRepoMock{}

type blockRepoMock struct {
	CreateOpenFunc             func(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	GetByIDFunc                func(ctx context.Context, practiceID, userID, blockID uuid.UUID) (*domain.TimeBlock, error)
	GetOpenByUserFunc          func(ctx context.Context, practiceID, userID uuid.UUID) (*domain.TimeBlock, error)
	GetOpenByUserForUpdateFunc func(ctx context.Context, practiceID, userID uuid.UUID) (*domain.TimeBlock, error)
	UpdateFunc                 func(ctx context.Context, block *domain.TimeBlock) error
	ListByUserInRangeFunc      func(ctx context.Context, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeBlock, error)

	calls struct {
		CreateOpen []struct {
			Block *domain.TimeBlock
		}
		GetByID []struct {
			PracticeID uuid.UUID
			UserID     uuid.UUID
			BlockID    uuid.UUID
		}
		GetOpenByUser []struct {
			PracticeID uuid.UUID
			UserID     uuid.UUID
		}
		GetOpenByUserForUpdate []struct {
			PracticeID uuid.UUID
			UserID     uuid.UUID
		}
		Update []struct {
			Block *domain.TimeBlock
		}
		ListByUserInRange []struct {
			PracticeID uuid.UUID
			UserID     uuid.UUID
			From       time.Time
			To         time.Time
		}
	}
	lockCreateOpen             sync.RWMutex
	lockGetByID                sync.RWMutex
	lockGetOpenByUser          sync.RWMutex
	lockGetOpenByUserForUpdate sync.RWMutex
	lockUpdate                 sync.RWMutex
	lockListByUserInRange      sync.RWMutex
}

func (mock *blockRepoMock) CreateOpen(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	if mock.CreateOpenFunc == nil {
		panic("blockRepoMock.CreateOpenFunc: method is nil but blockRepo.CreateOpen was just called")
	}
	callInfo := struct {
		Block *domain.TimeBlock
	}{Block: block}
	mock.lockCreateOpen.Lock()
	mock.calls.CreateOpen = append(mock.calls.CreateOpen, callInfo)
	mock.lockCreateOpen.Unlock()
	return mock.CreateOpenFunc(ctx, block)
}

func (mock *blockRepoMock) CreateOpenCalls() []struct {
	Block *domain.TimeBlock
} {
	mock.lockCreateOpen.RLock()
	calls := mock.calls.CreateOpen
	mock.lockCreateOpen.RUnlock()
	return calls
}

func (mock *blockRepoMock) GetByID(ctx context.Context, practiceID, userID, blockID uuid.UUID) (*domain.TimeBlock, error) {
	if mock.GetByIDFunc == nil {
		panic("blockRepoMock.GetByIDFunc: method is nil but blockRepo.GetByID was just called")
	}
	callInfo := struct {
		PracticeID uuid.UUID
		UserID     uuid.UUID
		BlockID    uuid.UUID
	}{PracticeID: practiceID, UserID: userID, BlockID: blockID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, practiceID, userID, blockID)
}

func (mock *blockRepoMock) GetOpenByUser(ctx context.Context, practiceID, userID uuid.UUID) (*domain.TimeBlock, error) {
	if mock.GetOpenByUserFunc == nil {
		panic("blockRepoMock.GetOpenByUserFunc: method is nil but blockRepo.GetOpenByUser was just called")
	}
	callInfo := struct {
		PracticeID uuid.UUID
		UserID     uuid.UUID
	}{PracticeID: practiceID, UserID: userID}
	mock.lockGetOpenByUser.Lock()
	mock.calls.GetOpenByUser = append(mock.calls.GetOpenByUser, callInfo)
	mock.lockGetOpenByUser.Unlock()
	return mock.GetOpenByUserFunc(ctx, practiceID, userID)
}

func (mock *blockRepoMock) GetOpenByUserCalls() []struct {
	PracticeID uuid.UUID
	UserID     uuid.UUID
} {
	mock.lockGetOpenByUser.RLock()
	calls := mock.calls.GetOpenByUser
	mock.lockGetOpenByUser.RUnlock()
	return calls
}

func (mock *blockRepoMock) GetOpenByUserForUpdate(ctx context.Context, practiceID, userID uuid.UUID) (*domain.TimeBlock, error) {
	if mock.GetOpenByUserForUpdateFunc == nil {
		panic("blockRepoMock.GetOpenByUserForUpdateFunc: method is nil but blockRepo.GetOpenByUserForUpdate was just called")
	}
	callInfo := struct {
		PracticeID uuid.UUID
		UserID     uuid.UUID
	}{PracticeID: practiceID, UserID: userID}
	mock.lockGetOpenByUserForUpdate.Lock()
	mock.calls.GetOpenByUserForUpdate = append(mock.calls.GetOpenByUserForUpdate, callInfo)
	mock.lockGetOpenByUserForUpdate.Unlock()
	return mock.GetOpenByUserForUpdateFunc(ctx, practiceID, userID)
}

func (mock *blockRepoMock) GetOpenByUserForUpdateCalls() []struct {
	PracticeID uuid.UUID
	UserID     uuid.UUID
} {
	mock.lockGetOpenByUserForUpdate.RLock()
	calls := mock.calls.GetOpenByUserForUpdate
	mock.lockGetOpenByUserForUpdate.RUnlock()
	return calls
}

func (mock *blockRepoMock) Update(ctx context.Context, block *domain.TimeBlock) error {
	if mock.UpdateFunc == nil {
		panic("blockRepoMock.UpdateFunc: method is nil but blockRepo.Update was just called")
	}
	callInfo := struct {
		Block *domain.TimeBlock
	}{Block: block}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, block)
}

func (mock *blockRepoMock) UpdateCalls() []struct {
	Block *domain.TimeBlock
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *blockRepoMock) ListByUserInRange(ctx context.Context, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeBlock, error) {
	if mock.ListByUserInRangeFunc == nil {
		panic("blockRepoMock.ListByUserInRangeFunc: method is nil but blockRepo.ListByUserInRange was just called")
	}
	callInfo := struct {
		PracticeID uuid.UUID
		UserID     uuid.UUID
		From       time.Time
		To         time.Time
	}{PracticeID: practiceID, UserID: userID, From: from, To: to}
	mock.lockListByUserInRange.Lock()
	mock.calls.ListByUserInRange = append(mock.calls.ListByUserInRange, callInfo)
	mock.lockListByUserInRange.Unlock()
	return mock.ListByUserInRangeFunc(ctx, practiceID, userID, from, to)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Fn func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Fn func(ctx context.Context) error
	}{Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Fn func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
