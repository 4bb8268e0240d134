package instance

// MakeOrFail creates an instance of named type, matching args with the type constructor parameters
func MakeOrFail(provider Provider, name string, args *Args) (interface{}, error) {
	constructor, err := provider.Lookup(name)
	if err != nil {
		return nil, err
	}
	return constructor.Instantiate(args)
}

// Make creates an instance of named type or returns nil on any failure
func Make(provider Provider, name string, args *Args) interface{} {
	ret, err := MakeOrFail(provider, name, args)
	if err != nil {
		return nil
	}
	return ret
}
