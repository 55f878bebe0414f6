// wrap.go: helpers that apply a Kind to arbitrary errors.
package jsuerror

import "errors"

// As finds the first instance along err's chain.
func As(err error) (Error, bool) {
	if err == nil {
		return nil, false
	}
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WrapAs classifies a foreign error under k.
//   - nil → nil
//   - err already carries an instance of k → returned unchanged
//   - otherwise → k.Wrap(err, args...), with the stack of WrapAs's caller
func WrapAs(err error, k *Kind, args ...any) error {
	if err == nil {
		return nil
	}
	if IsKind(err, k) {
		return err
	}
	return k.newInstance(1, "", err, args)
}

// WrapAsMsg is WrapAs with a per-call template.
func WrapAsMsg(err error, k *Kind, template string, args ...any) error {
	if err == nil {
		return nil
	}
	if IsKind(err, k) {
		return err
	}
	return k.newInstance(1, template, err, args)
}
