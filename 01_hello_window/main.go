package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/learngl/examples/utils"
)

type HelloWindow struct{}

func (app *HelloWindow) Init(s *utils.Sample) error {
	return nil
}

func (app *HelloWindow) Draw(s *utils.Sample) error {
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

func (app *HelloWindow) Destroy() {}

func main() {
	runtime.LockOSThread()

	err := utils.Run("01_hello_window", &HelloWindow{})
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
