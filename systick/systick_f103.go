//go:build stm32f103

package systick

import "device/arm"

// The SysTick exception has no NVIC line, so the handler dispatches
// through the most recently bound timer. One live Timer per board.
var active *Timer

func (t *Timer) bind() { active = t }

func (t *Timer) applyStart(reload uint32) {
	arm.SYST.SYST_RVR.Set(reload & 0xFFFFFF)
	arm.SYST.SYST_CVR.Set(0)
	arm.SYST.SYST_CSR.Set(arm.SYST_CSR_CLKSOURCE_Msk |
		arm.SYST_CSR_TICKINT_Msk |
		arm.SYST_CSR_ENABLE_Msk)
}

func (t *Timer) applyStop() {
	arm.SYST.SYST_CSR.Set(0)
	arm.SYST.SYST_CVR.Set(0)
}

//export SysTick_Handler
func handleSysTick() {
	if active != nil {
		active.tick()
	}
}
