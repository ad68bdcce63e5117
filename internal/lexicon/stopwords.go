package lexicon

import "strings"

// generalStopWords 通用英文停用词表
var generalStopWords = toSet(strings.Fields(`
i me my myself we our ours ourselves you your yours yourself yourselves he him
his himself she her hers herself it its itself they them their theirs
themselves what which who whom this that these those am is are was were be
been being have has had having do does did doing a an the and but if or
because as until while of at by for with about against between into through
during before after above below to from up down in out on off over under
again further then once here there when where why how all any both each few
more most other some such no nor not only own same so than too very s t can
will just don should now d ll m o re ve y ain aren couldn didn doesn hadn
hasn haven isn ma mightn mustn needn shan shouldn wasn weren won wouldn
`))

// domainStopWords 简历/招聘语境下无区分度的领域停用词，
// 关键词提取时与通用停用词取并集过滤。
var domainStopWords = toSet(strings.Fields(`
ability able across act action activities activity adapt addition additional
advantage advantageous affect afterward agency almost along alongside already
also although always among amongst amount annual another anyhow anyone
anything anyway anywhere appeal applicable apply approach appropriate area
around asset aspect aspects associated atmosphere attractive attitude
background based basis become becomes becoming beforehand behind beneficial
benefit benefits beside besides best better beyond bonus bring building
business candidate candidates capability capacity career cause center certain
certainly challenge chance change changes clear clearly client collaboration
collaborative colleague come commensurate commitment common communication
company compared compensation competency complete comprehensive computer
concept concern concerning condition consider considering consistent contact
continuous contribution coordinate could country course cover create criteria
critical crucial culture current currently customer cv resume biodata daily
deadline degree deliver demonstrable demonstrate department description
desirable detail details different direct directly disability discussion
diverse done due duties duty date birth gender nationality address phone
email early e g eg effect effective effectively efficiency efficient effort
efforts either eligible employee employer employment enable encourage end
engage ensure enter entire environment equal especially essential etc
evolution even event ever every everybody everyone everything everywhere
evidence example excellent except exchange execute experienced exposure
explain extend extent extra facilitate fact factor familiar familiarity
fastpaced fast-paced father feel few field final finally find first five
focus follow following found foundational four frequently full fully function
functional furthermore future general generally get give given global go goal
goals good graduate grasp great group grow growing growth guidance gpa cgpa
grade handson happy hard health help helpful hence hereafter hereby herein
hereupon high high-quality highquality highly holiday home hour hours however
human ideal ie impact important improve inc include includes including
increase indeed individual industry influence information initiative
initiatives inner input inside insight instance instead insure interest
interested internal introduce introduction involved involving issue
internship january february march april may june july august september
october november december job join keen key keep kind large last later latter
latterly least leave less let level like likely limited little location long
look looking ltd llc corp corporation languages linkedin github made main
mainly maintain major make making man manage many market maybe mean meanwhile
member mention might minimum mission monday month monthly moreover morning
mostly move much multiple must mutual name namely navigate near necessary
need needs neither never nevertheless new next nine nobody non none noone
normal normally nothing notice nowhere number obtain occasionally offer
office often online one ones onto open opportunity opportunities opposite
order organization organizational others otherwise ought overall overview
package paid part particular particularly partner party pass past passion
pay people per perform perhaps period phase person personal place plan
please plus point popular position possible post potential practical practice
preferred presence present principle previous previously price primary prior
priority private proactive probably problem-solving productive profession
professional proficiency proficient program progress promote property provide
provided purpose put portfolio profile publications qualification quality
quantity quarter question quick quickly quite rather reach readily ready
really reason recent regarding region regular relaxed related relation
relationship relevant report reporting respect responsible responsibilities
result results role room round references said salary saturday say says scope
seamless season second see seeing seek seeking seem seemed seeming seems seen
select self self-directed selfdirected send sense senior serious serve
several shall share shift short show showcasing showing side significant
similar similarly simple since sincere six small soft somehow someone
something sometime sometimes somewhat somewhere soon sorry specific
specifically staff stakeholder stakeholders standard standards start state
status stay step still strategic strategy strong structure student study
style subject submit success successful suitable sunday support supportive
sure school software specialist take taking task tasks teamwork tell ten term
terms thank thanks thence thereafter thereby therefore therein thereupon
thing things think third thorough thoroughly though three throughout thru
thus thursday time timely today together tomorrow top total toward towards
track train trend tuesday turn two type technical technologies tools training
understand understanding unless unlike unlikely unique update upon us use
used useful user-friendly userfriendly using usually utilize university
valuable value various verbal version via view visit volume vital vitae
volunteer want way ways wednesday week weekly welcome well-documented
welldocumented well went whatever whenever whence whereafter whereas whereby
wherein whereupon wherever whether whither whoever whole whose wide
willingness within without woman world worldwide would write written work
year years yes yet zero one two three four five six seven eight nine ten
`))
