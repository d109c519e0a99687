package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWaitWithoutErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
}

func (s *ApplicationSuite) TestWaitClosesResourcesAfterDrain() {
	var drained atomic.Bool
	closedAfterDrain := make(chan bool, 1)
	s.app.closeLock = func() error {
		closedAfterDrain <- drained.Load()
		return errors.New("already closed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.app.wg.Add(1)
	go func() {
		defer s.app.wg.Done()
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		drained.Store(true)
	}()
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
	select {
	case ok := <-closedAfterDrain:
		s.True(ok, "resources closed before background work finished")
	default:
		s.Fail("redis close was not called")
	}
}

func (s *ApplicationSuite) TestCloseWithoutResources() {
	s.NotPanics(s.app.close)
}
