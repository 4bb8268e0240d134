package broken

type Broken struct {
