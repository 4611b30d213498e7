package orchestrator

// MaxDialogueSteps bounds one handler's tool dialogue. Each step is one
// model call, tool calls included.
const MaxDialogueSteps = 5

// Error messages
const (
	ErrMsgDialogueLLMError = "dialogue LLM error at step %d"
	ErrMsgEmptyLLMResponse = "empty LLM response"
)

// Log messages
const (
	LogMsgDialogueStep        = "Dialogue step %d/%d"
	LogMsgDialogueFinished    = "Dialogue finished at step %d"
	LogMsgDialogueCallingTool = "Dialogue calling tool: %s with args: %+v"
	LogMsgToolExecutionError  = "Tool %s failed: %v"
	LogMsgDialogueMaxSteps    = "Dialogue exceeded max steps (%d)"
)
