package intcode

import "github.com/rs/zerolog"

// trace logs the decoded instruction together with its raw operands at trace
// level. Operands are printed as stored, modes are left to the reader.
func (m *Machine) trace(word int64, opcode Opcode) {
	if m.log.GetLevel() > zerolog.TraceLevel {
		return
	}
	operands := m.memory[m.ip+1 : min(m.ip+max(opcode.Width(), 1), len(m.memory))]
	m.log.Trace().
		Int("ip", m.ip).
		Int64("word", word).
		Stringer("op", opcode).
		Ints64("operands", operands).
		Int("pending", len(m.input)).
		Msg("exec")
}
