package multiple

type First struct{}

type Last interface {
	Run()
}

type Alias = First
