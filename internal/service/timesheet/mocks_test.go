package timesheet

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/praxora/praxis-backend/internal/domain"
)

var _ blockRepo = &blockRepoMock{}

type blockRepoMock struct {
	ListCompletedInRangeFunc func(ctx context.Context, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeBlock, error)

	calls struct {
		ListCompletedInRange []struct {
			PracticeID uuid.UUID
			UserID     uuid.UUID
			From       time.Time
			To         time.Time
		}
	}
	lockListCompletedInRange sync.RWMutex
}

func (mock *blockRepoMock) ListCompletedInRange(ctx context.Context, practiceID, userID uuid.UUID, from, to time.Time) ([]*domain.TimeBlock, error) {
	if mock.ListCompletedInRangeFunc == nil {
		panic("blockRepoMock.ListCompletedInRangeFunc: method is nil but blockRepo.ListCompletedInRange was just called")
	}
	callInfo := struct {
		PracticeID uuid.UUID
		UserID     uuid.UUID
		From       time.Time
		To         time.Time
	}{PracticeID: practiceID, UserID: userID, From: from, To: to}
	mock.lockListCompletedInRange.Lock()
	mock.calls.ListCompletedInRange = append(mock.calls.ListCompletedInRange, callInfo)
	mock.lockListCompletedInRange.Unlock()
	return mock.ListCompletedInRangeFunc(ctx, practiceID, userID, from, to)
}

func (mock *blockRepoMock) ListCompletedInRangeCalls() []struct {
	PracticeID uuid.UUID
	UserID     uuid.UUID
	From       time.Time
	To         time.Time
} {
	mock.lockListCompletedInRange.RLock()
	calls := mock.calls.ListCompletedInRange
	mock.lockListCompletedInRange.RUnlock()
	return calls
}

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CreateFunc  func(ctx context.Context, r *domain.MonthlyReport) (*domain.MonthlyReport, error)
	ExistsFunc  func(ctx context.Context, practiceID, userID uuid.UUID, year, month int) (bool, error)
	GetByIDFunc func(ctx context.Context, practiceID, reportID uuid.UUID) (*domain.MonthlyReport, error)
	ListFunc    func(ctx context.Context, practiceID uuid.UUID, filter domain.ReportFilter) ([]*domain.MonthlyReport, error)

	calls struct {
		Create []struct {
			Report *domain.MonthlyReport
		}
		Exists []struct {
			PracticeID uuid.UUID
			UserID     uuid.UUID
			Year       int
			Month      int
		}
		GetByID []struct {
			PracticeID uuid.UUID
			ReportID   uuid.UUID
		}
		List []struct {
			PracticeID uuid.UUID
			Filter     domain.ReportFilter
		}
	}
	lockCreate  sync.RWMutex
	lockExists  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *reportRepoMock) Create(ctx context.Context, r *domain.MonthlyReport) (*domain.MonthlyReport, error) {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	callInfo := struct {
		Report *domain.MonthlyReport
	}{Report: r}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *reportRepoMock) CreateCalls() []struct {
	Report *domain.MonthlyReport
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reportRepoMock) Exists(ctx context.Context, practiceID, userID uuid.UUID, year, month int) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("reportRepoMock.ExistsFunc: method is nil but reportRepo.Exists was just called")
	}
	callInfo := struct {
		PracticeID uuid.UUID
		UserID     uuid.UUID
		Year       int
		Month      int
	}{PracticeID: practiceID, UserID: userID, Year: year, Month: month}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, practiceID, userID, year, month)
}

func (mock *reportRepoMock) GetByID(ctx context.Context, practiceID, reportID uuid.UUID) (*domain.MonthlyReport, error) {
	if mock.GetByIDFunc == nil {
		panic("reportRepoMock.GetByIDFunc: method is nil but reportRepo.GetByID was just called")
	}
	callInfo := struct {
		PracticeID uuid.UUID
		ReportID   uuid.UUID
	}{PracticeID: practiceID, ReportID: reportID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, practiceID, reportID)
}

func (mock *reportRepoMock) List(ctx context.Context, practiceID uuid.UUID, filter domain.ReportFilter) ([]*domain.MonthlyReport, error) {
	if mock.ListFunc == nil {
		panic("reportRepoMock.ListFunc: method is nil but reportRepo.List was just called")
	}
	callInfo := struct {
		PracticeID uuid.UUID
		Filter     domain.ReportFilter
	}{PracticeID: practiceID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, practiceID, filter)
}

func (mock *reportRepoMock) ListCalls() []struct {
	PracticeID uuid.UUID
	Filter     domain.ReportFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	ReportGeneratedFunc func(ctx context.Context, r *domain.MonthlyReport)

	calls struct {
		ReportGenerated []struct {
			Report *domain.MonthlyReport
		}
	}
	lockReportGenerated sync.RWMutex
}

func (mock *notifierMock) ReportGenerated(ctx context.Context, r *domain.MonthlyReport) {
	if mock.ReportGeneratedFunc == nil {
		panic("notifierMock.ReportGeneratedFunc: method is nil but notifier.ReportGenerated was just called")
	}
	callInfo := struct {
		Report *domain.MonthlyReport
	}{Report: r}
	mock.lockReportGenerated.Lock()
	mock.calls.ReportGenerated = append(mock.calls.ReportGenerated, callInfo)
	mock.lockReportGenerated.Unlock()
	mock.ReportGeneratedFunc(ctx, r)
}

func (mock *notifierMock) ReportGeneratedCalls() []struct {
	Report *domain.MonthlyReport
} {
	mock.lockReportGenerated.RLock()
	calls := mock.calls.ReportGenerated
	mock.lockReportGenerated.RUnlock()
	return calls
}
