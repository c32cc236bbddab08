package service

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"github.com/ChungNYCU/jtcg-assignment/app/core"
	v1 "github.com/ChungNYCU/jtcg-assignment/app/logic/v1"
)

// NewChatCommand 終端互動對話，開發與驗收時不經 HTTP 直接試 agent。
// --replay 以對話樣本逐輪餵給 agent，驗收多輪行為用。
func NewChatCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "interactive customer service chat in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunChat(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	cmd.Flags().BoolVar(&opts.Replay, "replay", false, "replay conversation fixtures through the agent")
	return cmd
}

func RunChat(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))

	ctx := context.Background()
	if err := v1.NewRetrievalLogic(ctx, app).Populate(); err != nil {
		return err
	}

	chatLogic := v1.NewChatLogic(ctx, app)

	if opts.Replay {
		return replayConversations(app, chatLogic)
	}

	prompt := color.New(color.FgCyan, color.Bold)
	agentTag := color.New(color.FgGreen, color.Bold)

	fmt.Println("JTCG Shop AI 客服助理已就緒！")
	fmt.Println("輸入 'quit' 結束對話")
	fmt.Println(strings.Repeat("-", 50))

	var history []openai.ChatCompletionMessage
	scanner := bufio.NewScanner(os.Stdin)
	for {
		prompt.Print("\n您：")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "quit", "exit", "退出":
			fmt.Println("感謝您使用 JTCG Shop 客服服務！")
			return nil
		}

		reply := chatLogic.Chat(input, history)
		agentTag.Print("AI 客服：")
		fmt.Println(reply)

		history = append(history,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: input},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply},
		)
	}
	return scanner.Err()
}

func replayConversations(app *core.Core, chatLogic *v1.ChatLogic) error {
	conversations := app.Dataset().Conversations()
	if len(conversations) == 0 {
		return fmt.Errorf("no conversation fixtures loaded, set dataset.conversations_json")
	}

	prompt := color.New(color.FgCyan, color.Bold)
	agentTag := color.New(color.FgGreen, color.Bold)

	for i, conversation := range conversations {
		fmt.Printf("\n=== 對話 %d/%d ===\n", i+1, len(conversations))

		var history []openai.ChatCompletionMessage
		for _, message := range conversation.UserMessages() {
			prompt.Print("您：")
			fmt.Println(message)

			reply := chatLogic.Chat(message, history)
			agentTag.Print("AI 客服：")
			fmt.Println(reply)

			history = append(history,
				openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message},
				openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply},
			)
		}
	}
	return nil
}
