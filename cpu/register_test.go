package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFile(t *testing.T) {
	assert := assert.New(t)

	var rf RegisterFile
	for n := range REGISTER_COUNT {
		rf.Set(Register(n), int32(n*10))
	}

	assert.Equal(RegisterFile{0, 10, 20, 30, 40, 50, 60, 70}, rf)
	assert.Equal(int32(30), rf.Get(REG_C))

	rf.SetPc(42)
	assert.Equal(uint32(42), rf.Pc())
	assert.Equal(int32(42), rf.Get(REG_PC))

	rf.Set(REG_PC, -1)
	assert.Equal(uint32(0xffffffff), rf.Pc())

	rf.Reset()
	assert.Equal(RegisterFile{}, rf)
}
