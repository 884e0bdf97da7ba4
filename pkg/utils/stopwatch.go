package utils

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type stopwatchMark struct {
	time  time.Time
	label string
}

type StopwatchSplit struct {
	Label    string
	Duration time.Duration
}

func (s StopwatchSplit) MarshalLogObject(e zapcore.ObjectEncoder) error {
	e.AddString("label", s.Label)
	e.AddDuration("duration", s.Duration)
	return nil
}

type StopwatchSplits []StopwatchSplit

func (s StopwatchSplits) MarshalLogArray(e zapcore.ArrayEncoder) error {
	for _, split := range s {
		if err := e.AppendObject(split); err != nil {
			return err
		}
	}
	return nil
}

// Stopwatch records labelled marks from its creation. It is not safe for concurrent use.
type Stopwatch struct {
	marks []stopwatchMark
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		marks: []stopwatchMark{{time: time.Now(), label: "start"}},
	}
}

func (s *Stopwatch) Mark(label string) {
	s.marks = append(s.marks, stopwatchMark{
		time:  time.Now(),
		label: label,
	})
}

// Elapsed is the time between the start and the last mark.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.marks[len(s.marks)-1].time.Sub(s.marks[0].time)
}

// Splits returns the time taken by each mark since the previous one.
func (s *Stopwatch) Splits() StopwatchSplits {
	splits := make(StopwatchSplits, len(s.marks)-1)
	for i := 1; i < len(s.marks); i++ {
		splits[i-1] = StopwatchSplit{
			Label:    s.marks[i].label,
			Duration: s.marks[i].time.Sub(s.marks[i-1].time),
		}
	}
	return splits
}
