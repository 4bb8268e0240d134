package notype

func Run() {}
