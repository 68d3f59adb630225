package mockworker

import (
	"complaint-trends-service/internal/model"

	"github.com/stretchr/testify/mock"
)

type Worker struct {
	mock.Mock
}

func (m *Worker) Enqueue(n model.Notification) {
	m.Called(n)
}

func (m *Worker) Shutdown() {
	m.Called()
}
