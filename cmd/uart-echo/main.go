//go:build stm32f103

package main

import (
	"f103periph-go/afio"
	"f103periph-go/boardcfg"
	"f103periph-go/delay"
	"f103periph-go/gpio"
	"f103periph-go/periph"
	"f103periph-go/rcc"
	"f103periph-go/systick"
	"f103periph-go/uart"
	"f103periph-go/x/conv"
)

// Board is chosen at link time: -ldflags="-X main.board=maple".
// Empty picks the boardcfg default.
var board string

// Activity LED. The usual blue pill wiring sinks the LED through PC13,
// so the pin is driven high to turn it off.
var ledPin = periph.PC(13)

func main() {
	println("[echo] boot ...")

	prof, err := boardcfg.Load(board)
	if err != nil {
		println("[echo] FAIL: profile:", err.Error())
		return
	}

	clock := rcc.New()
	if err := clock.Configure(prof.SysClock); err != nil {
		println("[echo] FAIL: clock:", err.Error())
		return
	}
	pins := afio.NewRouter(clock)
	ticks := systick.New(clock)
	if err := ticks.Configure(prof.TickUnit, prof.TickStep); err != nil {
		println("[echo] FAIL: systick:", err.Error())
		return
	}

	bank := uart.New(clock, pins, ticks)
	con := bank.Channel(prof.Console.Instance)
	err = con.Configure(uart.Config{
		Mapping:      prof.Console.Mapping,
		Baud:         prof.Console.Baud,
		RxBufferSize: prof.Console.RxBuffer,
	})
	if err != nil {
		println("[echo] FAIL: uart:", err.Error())
		return
	}

	leds := gpio.New(clock)
	if err := leds.InitOutput(ledPin, gpio.PushPull, gpio.Speed2MHz, true); err != nil {
		println("[echo] led:", err.Error())
	}

	// Give the host end a moment to open the port before the banner.
	delay.Wait(ticks, 50)
	banner(con, prof)

	// Echo loop: poll the ring, send back whatever arrived.
	buf := make([]byte, 64)
	for {
		n, err := con.Read(buf)
		if err != nil {
			println("[echo] read:", err.Error())
			continue
		}
		if n == 0 {
			continue
		}
		_ = leds.Toggle(ledPin)
		if err := con.Send(buf[:n]); err != nil {
			println("[echo] send:", err.Error())
		}
	}
}

func banner(con *uart.Channel, prof boardcfg.Profile) {
	var num [20]byte
	_, _ = con.WriteString("echo ready board=")
	_, _ = con.WriteString(prof.Board)
	_, _ = con.WriteString(" baud=")
	_, _ = con.Write(conv.Utoa(num[:], uint64(prof.Console.Baud)))
	_, _ = con.WriteString("\r\n")
}
