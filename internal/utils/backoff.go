package utils

import (
	"time"
)

type Backoff struct {
	base       time.Duration
	maxRetries int
}

func NewBackoff(base time.Duration, maxRetries int) Backoff {
	return Backoff{base: base, maxRetries: maxRetries}
}

// Do executa fn até maxRetries+1 vezes, dormindo base*2^i entre tentativas.
func (b Backoff) Do(fn func(i int) error) error {
	var err error
	for i := 0; i <= b.maxRetries; i++ {
		err = fn(i)
		if err == nil {
			return nil
		}
		if i < b.maxRetries {
			time.Sleep(time.Duration(1<<i) * b.base)
		}
	}
	return err
}
