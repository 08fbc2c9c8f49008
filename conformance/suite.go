package conformance

import (
	"errors"
	"fmt"
	"time"

	"github.com/tuannh982/set-conformance/utils/collections"

	log "github.com/sirupsen/logrus"
)

// Scenario is a single named check. Run returns nil when the behavior
// matches, or an error describing the first mismatch.
type Scenario struct {
	Name string
	Run  func() error
}

type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

type Report struct {
	Passed []Result
	Failed []Result
}

func (r Report) OK() bool {
	return len(r.Failed) == 0
}

func (r Report) String() string {
	return fmt.Sprintf("passed=%d failed=%d", len(r.Passed), len(r.Failed))
}

type Suite struct {
	names     collections.Set[string]
	scenarios []Scenario
}

func NewSuite() *Suite {
	return &Suite{
		names:     collections.New[string](),
		scenarios: make([]Scenario, 0),
	}
}

func (s *Suite) Add(scenario Scenario) error {
	if err := s.names.Add(scenario.Name); err != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateScenario, scenario.Name)
	}
	s.scenarios = append(s.scenarios, scenario)
	return nil
}

func (s *Suite) Size() int {
	return len(s.scenarios)
}

// Run executes every scenario in registration order.
func (s *Suite) Run(logger *log.Entry) Report {
	report := Report{
		Passed: make([]Result, 0, len(s.scenarios)),
		Failed: make([]Result, 0),
	}
	for _, scenario := range s.scenarios {
		entry := logger.WithField("scenario", scenario.Name)
		start := time.Now()
		err := run(scenario)
		result := Result{
			Name:     scenario.Name,
			Err:      err,
			Duration: time.Since(start),
		}
		if err != nil {
			entry.WithError(err).Error("scenario failed")
			report.Failed = append(report.Failed, result)
			continue
		}
		entry.WithField("elapsed", result.Duration).Debug("scenario passed")
		report.Passed = append(report.Passed, result)
	}
	logger.WithFields(log.Fields{
		"passed": len(report.Passed),
		"failed": len(report.Failed),
	}).Info("suite finished")
	return report
}

func run(scenario Scenario) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()
	return scenario.Run()
}

func mismatch(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMismatch, fmt.Sprintf(format, args...))
}

func expect(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return mismatch(format, args...)
}

func expectSet[V any](got, want collections.Set[V]) error {
	return expect(got.Equals(want), "got %s, want %s", got, want)
}

func expectErr(err, target error) error {
	if err == target {
		return nil
	}
	return mismatch("got error %v, want %v", err, target)
}

func expectKind(err, kind error) error {
	if err != nil && errors.Is(err, kind) {
		return nil
	}
	return mismatch("got error %v, want %v", err, kind)
}
