package C // import "A.B.C"

type Foo struct{}
