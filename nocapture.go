// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capture

// GreetingText is the fixed output of Greeting.
const GreetingText = "Hello, world!"

// Greeting is a callable that captures nothing.
// It is freely copyable; CallOnce consumes a copy and leaves the
// original usable.
type Greeting struct{}

func (Greeting) Call(Unit) string     { return GreetingText }
func (Greeting) CallMut(Unit) string  { return GreetingText }
func (Greeting) CallOnce(Unit) string { return GreetingText }

var _ Fn[Unit, string] = Greeting{}
