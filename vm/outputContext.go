package vm

import (
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

// outputContext accumulates the result of a single contract call
type outputContext struct {
	returnData    [][]byte
	returnMessage string
}

func newOutputContext() *outputContext {
	return &outputContext{
		returnData: make([][]byte, 0),
	}
}

// Finish appends a value to the return data
func (oc *outputContext) Finish(value []byte) {
	oc.returnData = append(oc.returnData, value)
}

// AddReturnMessage appends a message to the return message
func (oc *outputContext) AddReturnMessage(msg string) {
	if len(oc.returnMessage) == 0 {
		oc.returnMessage = msg
		return
	}

	oc.returnMessage += "@" + msg
}

func (oc *outputContext) createVMOutput(returnCode vmcommon.ReturnCode, logs []*vmcommon.LogEntry) *vmcommon.VMOutput {
	return &vmcommon.VMOutput{
		ReturnCode:    returnCode,
		ReturnMessage: oc.returnMessage,
		ReturnData:    oc.returnData,
		Logs:          logs,
	}
}
