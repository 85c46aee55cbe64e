//go:build disable_assertions

package assert

const Enabled = false

func IsTrue(cond bool, msg string) {
}

func IsTrueFunc(cond bool, msg func() string) {
}

func IsFalse(cond bool, msg string) {
}

func IsFalseFunc(cond bool, msg func() string) {
}

func IsNull[T any](value T, msg string) {
}

func IsNullFunc[T any](value T, msg func() string) {
}

func IsNotNull[T any](value T, msg string) {
}

func IsNotNullFunc[T any](value T, msg func() string) {
}
