package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lookingglass-go/internal/commands"
	"github.com/lookingglass-go/internal/config"
	"github.com/lookingglass-go/internal/core"
	"github.com/lookingglass-go/internal/device"
	"github.com/lookingglass-go/internal/query"
	"github.com/lookingglass-go/pkg/logger"
	"github.com/lookingglass-go/pkg/utils"
)

var (
	// 命令行参数
	deviceName  string
	target      string
	vrfName     string
	queryType   string
	transport   string
	requestFile string
	outputFmt   string
)

// LookingGlass 主程序
type LookingGlass struct {
	config    *config.Config
	inventory *device.Inventory
	catalog   *commands.Catalog
}

// NewLookingGlass 创建主程序实例
func NewLookingGlass() *LookingGlass {
	return &LookingGlass{
		config: config.GetConfig(),
	}
}

// load 加载设备清单和命令目录
func (lg *LookingGlass) load() error {
	inv, err := device.Load(lg.config.DevicesFile)
	if err != nil {
		return err
	}
	lg.inventory = inv

	cat, err := commands.Load(lg.config.CommandsFile)
	if err != nil {
		return err
	}
	lg.catalog = cat

	return nil
}

// build 运行构造
func (lg *LookingGlass) build() error {
	if err := lg.load(); err != nil {
		return err
	}

	requests, err := lg.loadRequests()
	if err != nil {
		return err
	}

	builder := core.NewBuilder(lg.inventory, lg.catalog, lg.config.BuildConcurrency)
	results := builder.BuildAll(requests)

	return lg.printResults(results)
}

// loadRequests 加载构造请求
func (lg *LookingGlass) loadRequests() ([]core.Request, error) {
	var requests []core.Request

	if target != "" {
		qt, err := query.ParseType(queryType)
		if err != nil {
			return nil, err
		}

		var tr query.Transport
		if transport != "" {
			tr, err = query.ParseTransport(transport)
			if err != nil {
				return nil, err
			}
		}

		vrf := vrfName
		if vrf == "" {
			vrf = lg.config.DefaultVRF
		}

		requests = append(requests, core.Request{
			Device: deviceName,
			Query: query.Query{
				Target: target,
				VRF:    vrf,
				Type:   qt,
			},
			Transport: tr,
		})
	}

	if requestFile != "" {
		fileRequests, err := utils.LoadRequestsFromFile(requestFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load requests from file: %v", err)
		}
		requests = append(requests, fileRequests...)
	}

	if len(requests) == 0 {
		return nil, fmt.Errorf("no requests provided (use --target with --device, or --file)")
	}

	return requests, nil
}

// printResults 输出构造结果
func (lg *LookingGlass) printResults(results []core.Result) error {
	format := outputFmt
	if format == "" {
		format = lg.config.OutputFormat
	}

	if format == "json" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %v", err)
		}
		fmt.Println(string(data))
		return nil
	}

	failed := 0
	for _, result := range results {
		fmt.Printf("=== %s: %s ===\n", result.Request.Device, result.Request.Query)
		if result.Err != nil {
			failed++
			fmt.Printf("  error: %s\n", result.Error)
			continue
		}
		for _, art := range result.Artifacts {
			if art.Command != "" {
				fmt.Printf("  [%s] %s\n", art.AFI, art.Command)
			} else if art.Payload != nil {
				data, err := art.Payload.JSON()
				if err != nil {
					return fmt.Errorf("failed to marshal payload: %v", err)
				}
				fmt.Printf("  [%s] %s\n", art.AFI, data)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(results))
	}
	return nil
}

// devices 列出设备清单
func (lg *LookingGlass) devices() error {
	if err := lg.load(); err != nil {
		return err
	}

	for _, name := range lg.inventory.Names() {
		dev, err := lg.inventory.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s, transport %s)\n", dev.Name, dev.NOS, lg.catalog.TransportFor(dev.NOS))
		for i := range dev.VRFs {
			vrf := &dev.VRFs[i]
			fmt.Printf("  vrf %s: %v\n", vrf.Name, vrf.Families())
		}
	}

	return nil
}

// check 检查环境
func (lg *LookingGlass) check() error {
	logger.Info("Checking environment...")

	// 检查配置
	if lg.config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	// 检查设备清单
	if !utils.FileExists(lg.config.DevicesFile) {
		return fmt.Errorf("devices file not found: %s", lg.config.DevicesFile)
	}

	// 检查清单和目录可以加载
	if err := lg.load(); err != nil {
		return err
	}

	logger.Infof("Environment check passed (%d devices, %d NOS in catalog)", lg.inventory.Len(), len(lg.catalog.NOSNames()))
	return nil
}

// version 显示版本信息
func (lg *LookingGlass) version() {
	fmt.Println("LookingGlass-Go v1.0.0")
	fmt.Println("Network looking glass query construction tool")
	fmt.Println("GitHub: https://github.com/lookingglass-go")
}

// 创建根命令
var rootCmd = &cobra.Command{
	Use:   "lookingglass-go",
	Short: "LookingGlass-Go constructs network looking glass queries",
	Long: `LookingGlass-Go translates validated network queries (ping, traceroute,
bgp_route, bgp_community, bgp_aspath) into per-NOS CLI commands or REST API
payloads, resolving VRF and address-family context from the device inventory.`,
}

// 创建构造命令
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Construct command artifacts for one or more queries",
	Long:  `Construct CLI commands or API payloads for the given query, or for a batch of queries loaded from a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return NewLookingGlass().build()
	},
}

// 创建设备列表命令
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the device inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return NewLookingGlass().devices()
	},
}

// 创建检查命令
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return NewLookingGlass().check()
	},
}

// 创建版本命令
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		NewLookingGlass().version()
	},
}

func init() {
	// 加载环境变量
	loadEnvironment()

	// 根据环境变量设置日志级别
	logLevel := "info"
	if debugEnabled := os.Getenv("DEBUG_ENABLED"); debugEnabled == "true" {
		logLevel = "debug"
	} else if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
		logLevel = logLevelEnv
	}

	// 初始化日志
	logger.Init(logLevel, "")

	// 设置根命令
	rootCmd.AddCommand(buildCmd, devicesCmd, checkCmd, versionCmd)

	// 设置build命令的参数
	buildCmd.Flags().StringVarP(&deviceName, "device", "d", "", "Device name from the inventory")
	buildCmd.Flags().StringVarP(&target, "target", "t", "", "Query target (IP address, prefix or AS-path pattern)")
	buildCmd.Flags().StringVarP(&vrfName, "vrf", "v", "", "VRF name (default \"default\")")
	buildCmd.Flags().StringVarP(&queryType, "query", "q", "bgp_route", "查询类型 (ping/traceroute/bgp_route/bgp_community/bgp_aspath)")
	buildCmd.Flags().StringVarP(&transport, "transport", "x", "", "传输方式 (cli/api，默认按NOS自动选择)")
	buildCmd.Flags().StringVarP(&requestFile, "file", "f", "", "请求文件（每行: device query_type target [vrf]）")
	buildCmd.Flags().StringVarP(&outputFmt, "format", "o", "", "输出格式 (text/json)")
}

// loadEnvironment 加载环境变量
func loadEnvironment() {
	// 尝试加载.env文件
	if err := godotenv.Load(); err != nil {
		// 如果.env文件不存在，尝试加载env.example
		if err := godotenv.Load("env.example"); err != nil {
			// 如果都不存在，使用默认配置
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
