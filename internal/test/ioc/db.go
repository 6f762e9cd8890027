package testioc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ecodeclub/qcmbank/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var db *egorm.Component

func InitDB() *egorm.Component {
	if db != nil {
		return db
	}
	if err := loadConfig(); err != nil {
		panic(err)
	}
	ioc.WaitForDBSetup(econf.GetStringMapString("mysql")["dsn"])
	db = egorm.Load("mysql").Build()
	return db
}

// loadConfig 测试可能在任意深度的包下运行，往上找到仓库根目录的配置
func loadConfig() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for {
		content, err := os.ReadFile(filepath.Join(dir, "config", "local.yaml"))
		if err == nil {
			return econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return fmt.Errorf("找不到 config/local.yaml")
		}
		dir = parent
	}
}
