// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"context"
	"sync"

	"github.com/frostbyte73/core"
)

// OneShot is a write-once result slot. The first Resolve wins, later ones report false.
type OneShot struct {
	lock     sync.Mutex
	err      error
	resolved core.Fuse
}

func NewOneShot() *OneShot {
	return &OneShot{
		resolved: core.NewFuse(),
	}
}

func (o *OneShot) Resolve(err error) bool {
	o.lock.Lock()
	defer o.lock.Unlock()

	if o.resolved.IsBroken() {
		return false
	}
	o.err = err
	o.resolved.Break()
	return true
}

func (o *OneShot) IsResolved() bool {
	return o.resolved.IsBroken()
}

// Wait blocks until the slot is resolved or ctx is done.
// resolved is false when ctx ended the wait first.
func (o *OneShot) Wait(ctx context.Context) (resolved bool, err error) {
	select {
	case <-o.resolved.Watch():
		o.lock.Lock()
		defer o.lock.Unlock()
		return true, o.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
