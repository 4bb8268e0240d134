package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/viant/afsc/aws"
	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"
	"github.com/viant/resolver"
	"github.com/viant/resolver/cmd"
)

func main() {
	if err := cmd.New(resolver.Version, os.Args[1:]); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		log.Fatal(err)
	}
}
