package foldertwo // import "github.com/viant/resolver/testdata/folderone/foldertwo"

type NeedsParams struct {
	AString string
	AnInt   int
	AnArray []string
}

func NewNeedsParams(aString string, anInt int, anArray []string) *NeedsParams {
	return &NeedsParams{AString: aString, AnInt: anInt, AnArray: anArray}
}
