package assert

import "github.com/u1krsh/GenesisEngine/gerror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(gerror.New(message, args...))
	}
}
