// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands critter 命令行
package commands

import (
	"fmt"
	"os"
	"strings"

	pty "github.com/33cn/critter/plugin/dapp/critter/types"
	"github.com/33cn/critter/rpc/jsonclient"
	rpctypes "github.com/33cn/critter/rpc/types"
	commandtypes "github.com/33cn/critter/system/dapp/commands/types"
	"github.com/33cn/critter/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// CritterCmd critter command
func CritterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "critter",
		Short: "Critter number game management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		CritterCreateCmd(),
		CritterBetCmd(),
		CritterClaimCmd(),
		CritterGameCmd(),
		CritterBetInfoCmd(),
		CritterDrawCmd(),
		CritterPrizeCmd(),
		CritterEndedCmd(),
		CritterListCmd(),
		CritterBetsCmd(),
	)

	return cmd
}

// CritterCreateCmd 创建游戏
func CritterCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new game, open to everyone unless participants are given",
		Run:   critterCreate,
	}
	addCreateFlags(cmd)
	return cmd
}

func addCreateFlags(cmd *cobra.Command) {
	commandtypes.AddKeyFlag(cmd)
	cmd.Flags().StringP("game", "g", "", "game id, random uuid if empty")
	cmd.Flags().StringP("participants", "p", "", "allowed bettors, separated by ','")
	cmd.Flags().Int64P("duration", "d", pty.DefaultDuration, "minimum betting period in blocks")
}

func critterCreate(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetString("game")
	participants, _ := cmd.Flags().GetString("participants")
	duration, _ := cmd.Flags().GetInt64("duration")

	if gameID == "" {
		gameID = uuid.New().String()
	}
	params := &pty.CritterCreate{
		GameID:       gameID,
		Participants: splitAddrs(participants),
		Duration:     duration,
	}
	fmt.Fprintln(os.Stderr, "game id:", gameID)
	tx, err := pty.CreateRawCreateTx(params)
	commandtypes.SignAndSendTx(cmd, tx, err)
}

func splitAddrs(s string) []string {
	var addrs []string
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			addrs = append(addrs, a)
		}
	}
	return addrs
}

// CritterBetCmd 投注
func CritterBetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Bet on a number between 1 and 25",
		Run:   critterBet,
	}
	addBetFlags(cmd)
	return cmd
}

func addBetFlags(cmd *cobra.Command) {
	commandtypes.AddKeyFlag(cmd)
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
	cmd.Flags().Int32P("number", "n", 0, "number to bet on, 1-25")
	cmd.MarkFlagRequired("number")
	cmd.Flags().StringP("amount", "m", "", "bet amount")
	cmd.MarkFlagRequired("amount")
}

func critterBet(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetString("game")
	number, _ := cmd.Flags().GetInt32("number")
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		commandtypes.SignAndSendTx(cmd, nil, err)
		return
	}
	tx, err := pty.CreateRawBetTx(&pty.CritterBet{GameID: gameID, Number: number, Value: amount})
	commandtypes.SignAndSendTx(cmd, tx, err)
}

// CritterClaimCmd 领奖
func CritterClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim the prize of a winning bet",
		Run:   critterClaim,
	}
	addClaimFlags(cmd)
	return cmd
}

func addClaimFlags(cmd *cobra.Command) {
	commandtypes.AddKeyFlag(cmd)
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
	cmd.Flags().StringP("bet", "b", "", "bet id")
	cmd.MarkFlagRequired("bet")
}

func critterClaim(cmd *cobra.Command, args []string) {
	gameID, _ := cmd.Flags().GetString("game")
	betID, _ := cmd.Flags().GetString("bet")
	tx, err := pty.CreateRawClaimTx(&pty.CritterClaim{GameID: gameID, BetID: betID})
	commandtypes.SignAndSendTx(cmd, tx, err)
}

func query(rpcLaddr, funcName string, req types.Message, res interface{}) {
	params := rpctypes.Query4Jrpc{
		Execer:   pty.CritterX,
		FuncName: funcName,
		Payload:  types.Encode(req),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Critter.Query", params, res)
	ctx.Run()
}

func addGameFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
}

// CritterGameCmd 查询游戏
func CritterGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Show game info",
		Run:   critterGame,
	}
	addGameFlag(cmd)
	return cmd
}

func critterGame(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetString("game")
	var res pty.ReplyGame
	query(rpcLaddr, "GetGame", &pty.ReqGame{GameID: gameID}, &res)
}

// CritterBetInfoCmd 查询投注
func CritterBetInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet_info",
		Short: "Show bet info",
		Run:   critterBetInfo,
	}
	cmd.Flags().StringP("bet", "b", "", "bet id")
	cmd.MarkFlagRequired("bet")
	return cmd
}

func critterBetInfo(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	betID, _ := cmd.Flags().GetString("bet")
	var res pty.Bet
	query(rpcLaddr, "GetBet", &pty.ReqBet{BetID: betID}, &res)
}

// CritterDrawCmd 开奖号码
func CritterDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Show the drawn number, a preview while betting is open",
		Run:   critterDraw,
	}
	addGameFlag(cmd)
	return cmd
}

func critterDraw(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetString("game")
	var res pty.ReplyDrawnNumber
	query(rpcLaddr, "GetDrawnNumber", &pty.ReqGame{GameID: gameID}, &res)
}

// CritterPrizeCmd 奖金
func CritterPrizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prize",
		Short: "Show the prize of a bet",
		Run:   critterPrize,
	}
	addGameFlag(cmd)
	cmd.Flags().StringP("bet", "b", "", "bet id")
	cmd.MarkFlagRequired("bet")
	return cmd
}

func critterPrize(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetString("game")
	betID, _ := cmd.Flags().GetString("bet")
	var res pty.ReplyPrize
	query(rpcLaddr, "GetPrize", &pty.ReqPrize{GameID: gameID, BetID: betID}, &res)
}

// CritterEndedCmd 投注期是否结束
func CritterEndedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ended",
		Short: "Check whether the betting period has ended",
		Run:   critterEnded,
	}
	addGameFlag(cmd)
	return cmd
}

func critterEnded(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetString("game")
	var res pty.ReplyPeriodEnded
	query(rpcLaddr, "IsBettingPeriodEnded", &pty.ReqGame{GameID: gameID}, &res)
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("primary", "k", "", "primary key of the last item of the previous page")
	cmd.Flags().Int32P("count", "c", types.DefaultCount, "page size")
	cmd.Flags().Int32P("direction", "d", types.ListDESC, "0: desc, 1: asc")
}

// CritterListCmd 按状态列出游戏
func CritterListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games by status, 1: open 2: closed 3: settled",
		Run:   critterList,
	}
	cmd.Flags().Int32P("status", "s", pty.GameStatusOpen, "game status")
	addPageFlags(cmd)
	return cmd
}

func critterList(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	status, _ := cmd.Flags().GetInt32("status")
	primary, _ := cmd.Flags().GetString("primary")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	req := &pty.ReqListGames{Status: status, PrimaryKey: primary, Count: count, Direction: direction}
	var res pty.ReplyGameList
	query(rpcLaddr, "ListGames", req, &res)
}

// CritterBetsCmd 列出投注
func CritterBetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bets",
		Short: "List bets of a game or an address",
		Run:   critterBets,
	}
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.Flags().StringP("addr", "a", "", "bettor address, used when game is empty")
	addPageFlags(cmd)
	return cmd
}

func critterBets(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	gameID, _ := cmd.Flags().GetString("game")
	addr, _ := cmd.Flags().GetString("addr")
	primary, _ := cmd.Flags().GetString("primary")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	req := &pty.ReqListBets{GameID: gameID, Addr: addr, PrimaryKey: primary, Count: count, Direction: direction}
	var res pty.ReplyBetList
	query(rpcLaddr, "ListBets", req, &res)
}
