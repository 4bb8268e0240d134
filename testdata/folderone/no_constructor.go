package folderone

type NoConstructor struct {
	ID int
}
